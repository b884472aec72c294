package firstaid

import "github.com/abhisek/arogya/internal/i18n"

// guides holds every script, keyed by condition then language. Built
// once; never mutated after load.
var guides = map[Condition]map[i18n.Lang]Guide{
	ConditionCardiac: {
		i18n.English: {
			Title:   "Heart Attack / Chest Pain First Aid",
			Warning: "Call emergency services immediately before starting first aid",
			Steps: []Step{
				{Title: "Call Emergency Services", Instruction: "Call 911 (US) or 108 (India) immediately. State 'possible heart attack'"},
				{Title: "Position the Person", Instruction: "Help them sit upright, leaning against a wall or chair. This reduces strain on the heart."},
				{Title: "Give Aspirin (if safe)", Instruction: "If person is conscious and not allergic, give 325mg aspirin to chew slowly."},
				{Title: "Loosen Clothing", Instruction: "Loosen any tight clothing around neck, chest, and waist to help breathing."},
				{Title: "Monitor & Reassure", Instruction: "Stay calm, keep them calm, monitor breathing. Be prepared to perform CPR if needed."},
			},
			Warnings: []string{
				"Do NOT drive the person to hospital yourself",
				"Do NOT give nitroglycerin unless prescribed to them",
				"Do NOT give food or water",
			},
		},
		i18n.Hindi: {
			Title:   "दिल का दौरा / सीने में दर्द प्राथमिक चिकित्सा",
			Warning: "प्राथमिक चिकित्सा शुरू करने से पहले तुरंत आपातकालीन सेवाओं को कॉल करें",
			Steps: []Step{
				{Title: "आपातकालीन सेवाओं को कॉल करें", Instruction: "तुरंत 108 पर कॉल करें। कहें 'संभावित दिल का दौरा'"},
				{Title: "व्यक्ति को बैठाएं", Instruction: "उन्हें दीवार या कुर्सी के सहारे सीधा बैठने में मदद करें।"},
				{Title: "एस्प्रिन दें (यदि सुरक्षित है)", Instruction: "यदि व्यक्ति होश में है और एलर्जी नहीं है, तो 325mg एस्प्रिन चबाने को दें।"},
				{Title: "कपड़े ढीले करें", Instruction: "गर्दन, छाती और कमर के आसपास के कपड़े ढीले करें।"},
				{Title: "निगरानी और आश्वासन", Instruction: "शांत रहें, उन्हें शांत रखें, सांस की निगरानी करें।"},
			},
			Warnings: []string{
				"व्यक्ति को खुद अस्पताल न ले जाएं",
				"बिना प्रिस्क्रिप्शन के नाइट्रोग्लिसरीन न दें",
				"खाना या पानी न दें",
			},
		},
	},
	ConditionRespiratory: {
		i18n.English: {
			Title:   "Breathing Emergency / Choking First Aid",
			Warning: "For severe breathing difficulties, call emergency services immediately",
			Steps: []Step{
				{Title: "Call Emergency Services", Instruction: "Call 911 (US) or 108 (India) for severe breathing problems"},
				{Title: "Position Upright", Instruction: "Help person sit upright or lean forward slightly. Never lay them down."},
				{Title: "Use Inhaler (if available)", Instruction: "If they have a rescue inhaler, help them use it according to instructions"},
				{Title: "For Choking - Back Blows", Instruction: "Give 5 sharp back blows between shoulder blades with heel of hand"},
				{Title: "Heimlich Maneuver", Instruction: "Stand behind person, place fist above navel, thrust upward and inward 5 times"},
			},
			Warnings: []string{
				"Do NOT force person to lie down during breathing difficulty",
				"Do NOT leave person alone",
				"Do NOT give food or water during breathing emergency",
			},
		},
		i18n.Hindi: {
			Title:   "सांस की आपातकाल / गला रुंधना प्राथमिक चिकित्सा",
			Warning: "गंभीर सांस की कठिनाई के लिए तुरंत आपातकालीन सेवाओं को कॉल करें",
			Steps: []Step{
				{Title: "आपातकालीन सेवाओं को कॉल करें", Instruction: "गंभीर सांस की समस्याओं के लिए 108 पर कॉल करें"},
				{Title: "सीधा बैठाएं", Instruction: "व्यक्ति को सीधा बैठने या थोड़ा आगे झुकने में मदद करें।"},
				{Title: "इन्हेलर का उपयोग करें", Instruction: "यदि उनके पास रेस्क्यू इन्हेलर है, तो उपयोग में मदद करें"},
				{Title: "गला रुंधने पर - पीठ पर मारें", Instruction: "कंधे की ब्लेड के बीच हथेली से 5 तेज़ वार करें"},
				{Title: "हैमलिक मैन्यूवर", Instruction: "व्यक्ति के पीछे खड़े हों, नाभि के ऊपर मुट्ठी रखें, 5 बार ऊपर की ओर धक्का दें"},
			},
			Warnings: []string{
				"सांस की कठिनाई के दौरान व्यक्ति को लेटने को मजबूर न करें",
				"व्यक्ति को अकेला न छोड़ें",
				"सांस की आपातकाल के दौरान खाना या पानी न दें",
			},
		},
	},
	ConditionStroke: {
		i18n.English: {
			Title:   "Stroke First Aid",
			Warning: "TIME IS CRITICAL - Call emergency services immediately",
			Steps: []Step{
				{Title: "Call Emergency Services NOW", Instruction: "Call 911 (US) or 108 (India) immediately. Say 'possible stroke'"},
				{Title: "Check FAST Signs", Instruction: "Face drooping, Arms weakness, Speech difficulty, Time to call emergency"},
				{Title: "Keep Person Still", Instruction: "Do not move them unless in immediate danger. Support head if sitting"},
				{Title: "Monitor Breathing", Instruction: "Check if they are breathing normally. Be ready to perform rescue breathing"},
				{Title: "Note Time", Instruction: "Record when symptoms first appeared - this is crucial for treatment"},
			},
			Warnings: []string{
				"Do NOT give aspirin for stroke",
				"Do NOT give food or water",
				"Do NOT leave person alone",
			},
		},
	},
	ConditionTrauma: {
		i18n.English: {
			Title:   "Severe Bleeding / Trauma First Aid",
			Warning: "Call emergency services while providing first aid",
			Steps: []Step{
				{Title: "Call Emergency Services", Instruction: "Call 911 (US) or 108 (India) immediately for severe bleeding"},
				{Title: "Apply Direct Pressure", Instruction: "Use clean cloth, press firmly on wound. Do not remove if cloth soaks through, add more"},
				{Title: "Elevate if Possible", Instruction: "Raise injured area above heart level if no broken bones suspected"},
				{Title: "Check for Shock", Instruction: "Watch for pale skin, rapid weak pulse, shallow breathing. Keep person warm"},
				{Title: "Monitor Consciousness", Instruction: "Keep talking to person. If unconscious, check breathing and pulse"},
			},
			Warnings: []string{
				"Do NOT remove embedded objects",
				"Do NOT move person if spinal injury suspected",
				"Do NOT give food or water",
			},
		},
	},
	ConditionAllergic: {
		i18n.English: {
			Title:   "Severe Allergic Reaction First Aid",
			Warning: "Anaphylaxis can be fatal - act quickly",
			Steps: []Step{
				{Title: "Call Emergency Services", Instruction: "Call 911 (US) or 108 (India) immediately for severe allergic reaction"},
				{Title: "Use EpiPen if Available", Instruction: "Inject epinephrine auto-injector into outer thigh through clothing if prescribed"},
				{Title: "Remove Allergen", Instruction: "Remove or avoid the cause if known (food, medication, insect stinger)"},
				{Title: "Position Properly", Instruction: "If conscious, sit upright. If unconscious with breathing, recovery position"},
				{Title: "Monitor & Reassure", Instruction: "Watch breathing closely. Be prepared for second reaction wave"},
			},
			Warnings: []string{
				"Do NOT induce vomiting",
				"Do NOT give oral medications during severe reaction",
				"Do NOT leave person alone",
			},
		},
	},
	ConditionGeneral: {
		i18n.English: {
			Title:   "General Emergency First Aid",
			Warning: "When in doubt, call emergency services",
			Steps: []Step{
				{Title: "Assess the Situation", Instruction: "Check for immediate dangers to you and the patient before approaching"},
				{Title: "Call for Help", Instruction: "Call emergency services if situation seems serious or you're unsure"},
				{Title: "Check Responsiveness", Instruction: "Tap shoulders and shout 'Are you okay?' Check if person responds"},
				{Title: "Check Breathing", Instruction: "Look for chest movement, listen for breath sounds, feel for breath on cheek"},
				{Title: "Provide Comfort", Instruction: "Keep person calm, warm, and still until emergency services arrive"},
			},
			Warnings: []string{
				"Do NOT move person unnecessarily",
				"Do NOT give food or water unless specifically advised",
				"Do NOT leave person alone if seriously ill",
			},
		},
	},
}
