package slots

// Bilingual keyword tables used by the extractor. These are configuration
// data, not logic: adding a locale or a synonym must never require touching
// the extraction flow.

// UseCaseBucket groups keywords that map free text onto a use-case id.
type UseCaseBucket struct {
	ID       string
	Keywords []string
}

// UseCaseBuckets is ordered; a message may hit several buckets.
var UseCaseBuckets = []UseCaseBucket{
	{ID: "student", Keywords: []string{
		"student", "university", "college", "study", "homework",
		"סטודנט", "לימודים", "אוניברסיטה", "מכללה",
	}},
	{ID: "gaming", Keywords: []string{
		"gaming", "gamer", "games", "fps", "fortnite",
		"גיימר", "משחקים", "גיימינג", "חזק",
	}},
	{ID: "work", Keywords: []string{
		"work", "office", "business", "professional",
		"עבודה", "משרד", "עסק", "זום", "פגישות",
	}},
	{ID: "development", Keywords: []string{
		"developer", "programming", "coding", "engineer", "docker",
		"מפתח", "תכנות", "מהנדס", "פיתוח", "דוקר",
	}},
}

// Laptop keywords are checked before desktop keywords; first hit wins.
var (
	laptopKeywords = []string{
		"laptop", "notebook", "portable",
		"נייד", "לפטופ", "מחשב נייד", "מחברת", "ניידת",
	}
	desktopKeywords = []string{
		"desktop", "tower", "pc",
		"שולחני", "מחשב שולחני", "נייח", "מגדל", "דסקטופ",
	}
)

// AccessoryKind is one of the accessory categories the store carries.
type AccessoryKind struct {
	Category string
	Keywords []string
}

// AccessoryKinds is ordered by scan priority.
var AccessoryKinds = []AccessoryKind{
	{Category: "headset", Keywords: []string{"headset", "headphones", "אוזניות"}},
	{Category: "mouse", Keywords: []string{"mouse", "עכבר"}},
	{Category: "keyboard", Keywords: []string{"keyboard", "מקלדת"}},
	{Category: "monitor", Keywords: []string{"monitor", "screen", "מסך"}},
	{Category: "bag", Keywords: []string{"bag", "backpack", "תיק"}},
}

var computerKeywords = []string{
	"computer", "computers", "pc", "laptop", "desktop",
	"מחשב", "מחשבים", "קומפיוטר",
}

// Brand vocabulary is fixed to the brands the catalog actually stocks.
type brandEntry struct {
	Name     string
	Keywords []string
}

var brandVocabulary = []brandEntry{
	{Name: "Lenovo", Keywords: []string{"lenovo", "לנובו"}},
	{Name: "Dell", Keywords: []string{"dell", "דל"}},
	{Name: "HP", Keywords: []string{"hp", "אייץ פי", "הפ"}},
	{Name: "ASUS", Keywords: []string{"asus", "אסוס"}},
}

// Technical-unit tokens guard the bare-number budget fallback: a number that
// sits next to one of these is a spec (RAM size, disk size), not a price.
var technicalUnitTokens = []string{
	"gb", "tb", "ram", "ssd", "hdd", "גיגה", "ראם", "טרה",
}

var gpuNeedKeywords = []string{
	"rtx", "nvidia", "radeon", "gpu", "graphics",
	"כרטיס מסך", "גרפיקה",
}
