package model

import "time"

const (
	CategoryMeat  = "Meat"
	CategoryVeg   = "Veg"
	CategoryCarb  = "Carb"
	CategoryOil   = "Oil"
	CategoryTreat = "Treat"
)

const (
	StagePuppy  = "Puppy"
	StageAdult  = "Adult"
	StageSenior = "Senior"
)

const (
	ActivityLow      = "Low"
	ActivityNormal   = "Normal"
	ActivityHigh     = "High"
	ActivityAthletic = "Athletic/Working"
)

const (
	FlagNone       = "None"
	FlagWeightLoss = "Overweight / Weight loss goal"
	FlagSensitive  = "Sensitive stomach"
	FlagLowFat     = "Pancreatitis risk / Needs lower fat"
	FlagSkinCoat   = "Skin/coat concern"
	FlagPicky      = "Very picky eater"
	FlagKidney     = "Kidney concern (vet-managed)"
	FlagAllergy    = "Food allergy suspected"
	FlagJoint      = "Joint/mobility support focus"
)

const (
	PreferenceDislike = "Dislike"
	PreferenceNeutral = "Neutral"
	PreferenceLike    = "Like"
	PreferenceLove    = "Love"
)

const (
	ModePantry = "pantry"
	ModeSmart  = "smart"
)

type Ingredient struct {
	Name      string
	Category  string
	Kcal      float64
	ProteinG  float64
	FatG      float64
	CarbsG    float64
	Micronote string
	Benefits  []string
	Cautions  []string
}

type RatioPreset struct {
	Key     string
	Label   string
	MeatPct int
	VegPct  int
	CarbPct int
	Note    string
}

type Profile struct {
	Breed    string
	AgeYears float64
	WeightKg float64
	Activity string
	Neutered bool
	Flags    []string
}

type EnergyBreakdown struct {
	LifeStage   string
	RER         float64
	MER         float64
	AdjustedMER float64
	Factor      float64
	Adjustment  float64
	Explanation string
}

type DaySelection struct {
	Day  int
	Meat string
	Veg  string
	Carb string
}

type NutritionTotals struct {
	Kcal     float64
	ProteinG float64
	FatG     float64
	CarbsG   float64
}

type DayPlan struct {
	Day       int
	Meat      string
	Veg       string
	Carb      string
	MeatG     float64
	VegG      float64
	CarbG     float64
	Nutrition NutritionTotals
}

type Recommendations struct {
	Meats  []string
	Vegs   []string
	Carbs  []string
	Treats []string
}

type TasteEntry struct {
	ID         int64
	Breed      string
	AgeYears   float64
	WeightKg   float64
	Protein    string
	Veg        string
	Preference string
	Notes      string
	CreatedAt  time.Time
}

type PreferenceRank struct {
	Name    string
	Score   float64
	Entries int
}

type Supplement struct {
	Name     string
	Why      string
	BestFor  []string
	Cautions string
	Pairing  string
}

type PantryItem struct {
	ID        int64
	Name      string
	Category  string
	CreatedAt time.Time
}

type SavedPlan struct {
	ID          int64
	Token       string
	Breed       string
	AgeYears    float64
	WeightKg    float64
	Activity    string
	Neutered    bool
	Flags       string
	MeatPct     int
	VegPct      int
	CarbPct     int
	KcalPerGram float64
	DailyKcal   float64
	DailyGrams  float64
	Mode        string
	Days        int
	Seed        int64
	CreatedAt   time.Time
}
