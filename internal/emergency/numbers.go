// Package emergency provides the dial tables, the audited call action
// and best-effort location sharing used during an active emergency.
package emergency

// Number is one region's emergency dial entry.
type Number struct {
	Region string
	Dial   string
	Label  string
}

// Numbers is the fixed region dial table, in display order.
var Numbers = []Number{
	{Region: "US", Dial: "911", Label: "Emergency Services (US)"},
	{Region: "IN", Dial: "108", Label: "Emergency Services (India)"},
	{Region: "UK", Dial: "999", Label: "Emergency Services (UK)"},
	{Region: "EU", Dial: "112", Label: "Emergency Services (EU)"},
	{Region: "AU", Dial: "000", Label: "Emergency Services (Australia)"},
}

// NumberFor returns the dial entry for a region code. Unknown regions
// get the India entry, the app's primary audience.
func NumberFor(region string) Number {
	for _, n := range Numbers {
		if n.Region == region {
			return n
		}
	}
	return Numbers[1]
}

// Contact is a named emergency service or personal contact.
type Contact struct {
	Name string
	Dial string
}

// serviceContacts is the fixed India service trio.
var serviceContacts = []Contact{
	{Name: "Police", Dial: "100"},
	{Name: "Fire", Dial: "101"},
	{Name: "Ambulance", Dial: "108"},
}

// Contacts returns the contact list shown on the actions screen. A
// personal emergency contact, when set, is listed first.
func Contacts(personal *Contact) []Contact {
	if personal == nil || personal.Dial == "" {
		return serviceContacts
	}
	out := make([]Contact, 0, len(serviceContacts)+1)
	out = append(out, *personal)
	return append(out, serviceContacts...)
}
