// Package archetype maps conversation text onto a customer archetype and the
// hardware profile that archetype implies. The mapping is deterministic
// keyword scoring, so the same transcript always yields the same archetype.
package archetype

// Archetype is a coarse customer classification driving catalog filtering.
type Archetype string

const (
	Student  Archetype = "Student"
	Engineer Archetype = "Engineer"
	Gamer    Archetype = "Gamer"
	Business Archetype = "Business"
	HomeUser Archetype = "Home User"
	Other    Archetype = "Other"
)

// All lists the scoreable archetypes in evaluation order. Other is the
// fallback and is never scored directly.
var All = []Archetype{Student, Engineer, Gamer, Business, HomeUser}

// GPUNeed is a tri-state: some archetypes always need a dedicated GPU, some
// never do, and for engineers it depends on the field.
type GPUNeed string

const (
	GPURequired GPUNeed = "required"
	GPUNone     GPUNeed = "none"
	GPUDepends  GPUNeed = "depends"
)

// RequirementProfile is the hardware baseline implied by an archetype.
type RequirementProfile struct {
	CPUPriority        string
	RAMMinGB           int
	RAMRecommendedGB   int
	GPU                GPUNeed
	StorageMinGB       int
	StorageRecommended int
	Portability        string
	BudgetSensitive    bool
	Description        string
}

var profiles = map[Archetype]RequirementProfile{
	Student: {
		CPUPriority:        "medium",
		RAMMinGB:           8,
		RAMRecommendedGB:   16,
		GPU:                GPUNone,
		StorageMinGB:       256,
		StorageRecommended: 512,
		Portability:        "important",
		BudgetSensitive:    true,
		Description:        "Students need portable, affordable laptops for office work, research, and note-taking",
	},
	Engineer: {
		CPUPriority:        "high",
		RAMMinGB:           16,
		RAMRecommendedGB:   32,
		GPU:                GPUDepends,
		StorageMinGB:       512,
		StorageRecommended: 1024,
		Portability:        "medium",
		BudgetSensitive:    false,
		Description:        "Engineers need powerful CPUs and RAM for development, compilation, and professional tools",
	},
	Gamer: {
		CPUPriority:        "high",
		RAMMinGB:           16,
		RAMRecommendedGB:   32,
		GPU:                GPURequired,
		StorageMinGB:       512,
		StorageRecommended: 1024,
		Portability:        "low",
		BudgetSensitive:    false,
		Description:        "Gamers need dedicated GPUs, good cooling, and high-performance components",
	},
	Business: {
		CPUPriority:        "medium",
		RAMMinGB:           8,
		RAMRecommendedGB:   16,
		GPU:                GPUNone,
		StorageMinGB:       256,
		StorageRecommended: 512,
		Portability:        "medium",
		BudgetSensitive:    true,
		Description:        "Business users need reliable, secure computers for office applications and communication",
	},
	HomeUser: {
		CPUPriority:        "low",
		RAMMinGB:           8,
		RAMRecommendedGB:   8,
		GPU:                GPUNone,
		StorageMinGB:       256,
		StorageRecommended: 256,
		Portability:        "medium",
		BudgetSensitive:    true,
		Description:        "Home users need basic, affordable computers for browsing, email, and multimedia",
	},
	Other: {
		CPUPriority:        "medium",
		RAMMinGB:           8,
		RAMRecommendedGB:   16,
		GPU:                GPUNone,
		StorageMinGB:       256,
		StorageRecommended: 512,
		Portability:        "medium",
		BudgetSensitive:    true,
		Description:        "General-purpose computing with balanced specifications",
	},
}

// Profile returns the hardware profile for an archetype, falling back to the
// Other profile for anything unknown.
func Profile(a Archetype) RequirementProfile {
	if p, ok := profiles[a]; ok {
		return p
	}
	return profiles[Other]
}
