package archetype

// Keyword weights per archetype. Strong keywords name the person
// ("student", "engineer"), medium ones name their habitat ("exam",
// "compile"). Scores are strong*3 + medium*1.
type keywordSet struct {
	strong []string
	medium []string
}

var keywords = map[Archetype]keywordSet{
	Student: {
		strong: []string{
			"student", "university", "college", "studies", "homework", "assignment",
			"סטודנט", "אוניברסיטה", "לימודים", "שיעורי בית",
		},
		medium: []string{
			"school", "class", "lecture", "exam", "notes", "research",
			"בית ספר", "הרצאה", "מבחן",
		},
	},
	Engineer: {
		strong: []string{
			"engineer", "developer", "programmer", "architect", "designer",
			"מהנדס", "מפתח", "תכנתן", "אדריכל",
		},
		medium: []string{
			"coding", "programming", "development", "software", "cad", "autocad",
			"3d modeling", "rendering", "simulation", "compile",
			"תכנות", "פיתוח", "רינדור",
		},
	},
	Gamer: {
		strong: []string{
			"gaming", "gamer", "games", "fortnite", "valorant", "csgo", "warzone",
			"גיימר", "משחקים", "גיימינג",
		},
		medium: []string{
			"fps", "streaming", "twitch", "discord", "graphics", "rtx",
			"frame rate", "hz", "rgb",
		},
	},
	Business: {
		strong: []string{
			"business", "office", "work", "company", "employee",
			"עסק", "משרד", "עבודה", "חברה",
		},
		medium: []string{
			"excel", "powerpoint", "word", "email", "meetings", "zoom",
			"אקסל", "וורד", "פגישות",
		},
	},
	HomeUser: {
		strong: []string{
			"home", "family", "personal use", "browsing", "netflix",
			"בית", "משפחה", "שימוש אישי",
		},
		medium: []string{
			"internet", "youtube", "email", "photos", "videos",
			"אינטרנט", "תמונות", "סרטונים",
		},
	},
}
