package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawplan/pawplan-cli/internal/app"
	"github.com/pawplan/pawplan-cli/internal/catalog"
	"github.com/pawplan/pawplan-cli/internal/mealplan"
	"github.com/pawplan/pawplan-cli/internal/model"
)

type ingredientResponse struct {
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Kcal      float64  `json:"kcal_per_100g"`
	ProteinG  float64  `json:"protein_g_per_100g"`
	FatG      float64  `json:"fat_g_per_100g"`
	CarbsG    float64  `json:"carbs_g_per_100g"`
	Micronote string   `json:"micronote"`
	Benefits  []string `json:"benefits"`
	Cautions  []string `json:"cautions,omitempty"`
}

type presetResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	MeatPct int    `json:"meat_pct"`
	VegPct  int    `json:"veg_pct"`
	CarbPct int    `json:"carb_pct"`
	Note    string `json:"note"`
}

type profileRequest struct {
	Breed    string   `json:"breed"`
	AgeYears float64  `json:"age_years"`
	WeightKg float64  `json:"weight_kg"`
	Activity string   `json:"activity"`
	Neutered bool     `json:"neutered"`
	Flags    []string `json:"flags"`
}

type energyResponse struct {
	LifeStage   string  `json:"life_stage"`
	RER         float64 `json:"rer_kcal"`
	MER         float64 `json:"mer_kcal"`
	AdjustedMER float64 `json:"adjusted_mer_kcal"`
	Factor      float64 `json:"maintenance_factor"`
	Adjustment  float64 `json:"flag_adjustment"`
	Explanation string  `json:"explanation"`
}

type ratioRequest struct {
	MeatPct int `json:"meat_pct"`
	VegPct  int `json:"veg_pct"`
	CarbPct int `json:"carb_pct"`
}

type recommendResponse struct {
	Meats  []string `json:"meats"`
	Vegs   []string `json:"vegs"`
	Carbs  []string `json:"carbs"`
	Treats []string `json:"treats"`
}

type pantryRequest struct {
	Meats []string `json:"meats"`
	Vegs  []string `json:"vegs"`
	Carbs []string `json:"carbs"`
}

type planRequest struct {
	Profile     profileRequest `json:"profile"`
	Preset      string         `json:"preset"`
	MeatPct     int            `json:"meat_pct"`
	VegPct      int            `json:"veg_pct"`
	CarbPct     int            `json:"carb_pct"`
	KcalPerGram float64        `json:"kcal_per_gram"`
	Pantry      pantryRequest  `json:"pantry"`
	Mode        string         `json:"mode"`
	Days        int            `json:"days"`
	Seed        *int64         `json:"seed"`
}

type dayPlanResponse struct {
	Day      int     `json:"day"`
	Meat     string  `json:"meat"`
	Veg      string  `json:"veg"`
	Carb     string  `json:"carb"`
	MeatG    float64 `json:"meat_g"`
	VegG     float64 `json:"veg_g"`
	CarbG    float64 `json:"carb_g"`
	Kcal     float64 `json:"kcal"`
	ProteinG float64 `json:"protein_g"`
	FatG     float64 `json:"fat_g"`
	CarbsG   float64 `json:"carbs_g"`
}

type planResponse struct {
	Energy     energyResponse    `json:"energy"`
	MeatPct    int               `json:"meat_pct"`
	VegPct     int               `json:"veg_pct"`
	CarbPct    int               `json:"carb_pct"`
	DailyGrams float64           `json:"daily_grams"`
	MeatG      float64           `json:"meat_g"`
	VegG       float64           `json:"veg_g"`
	CarbG      float64           `json:"carb_g"`
	Days       []dayPlanResponse `json:"days"`
}

func (r profileRequest) toModel() (model.Profile, error) {
	flags, err := app.CanonicalFlags(r.Flags)
	if err != nil {
		return model.Profile{}, err
	}
	activity := strings.TrimSpace(r.Activity)
	if activity == "" {
		activity = model.ActivityNormal
	}
	return model.Profile{
		Breed:    strings.TrimSpace(r.Breed),
		AgeYears: r.AgeYears,
		WeightKg: r.WeightKg,
		Activity: activity,
		Neutered: r.Neutered,
		Flags:    flags,
	}, nil
}

func toIngredientResponse(ing model.Ingredient) ingredientResponse {
	return ingredientResponse{
		Name:      ing.Name,
		Category:  ing.Category,
		Kcal:      ing.Kcal,
		ProteinG:  ing.ProteinG,
		FatG:      ing.FatG,
		CarbsG:    ing.CarbsG,
		Micronote: ing.Micronote,
		Benefits:  ing.Benefits,
		Cautions:  ing.Cautions,
	}
}

func toEnergyResponse(b model.EnergyBreakdown) energyResponse {
	return energyResponse{
		LifeStage:   b.LifeStage,
		RER:         b.RER,
		MER:         b.MER,
		AdjustedMER: b.AdjustedMER,
		Factor:      b.Factor,
		Adjustment:  b.Adjustment,
		Explanation: b.Explanation,
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func (s *Server) handleListIngredients(c *gin.Context) {
	category := c.Query("category")
	if category != "" && !catalog.IsCategory(category) {
		badRequest(c, fmt.Errorf("unknown category %q", category))
		return
	}
	out := make([]ingredientResponse, 0)
	for _, ing := range catalog.All() {
		if category != "" && ing.Category != category {
			continue
		}
		out = append(out, toIngredientResponse(ing))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetIngredient(c *gin.Context) {
	ing, err := catalog.Match(c.Param("name"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toIngredientResponse(ing))
}

func (s *Server) handleListPresets(c *gin.Context) {
	out := make([]presetResponse, 0)
	for _, p := range catalog.Presets() {
		out = append(out, presetResponse{
			Key:     p.Key,
			Label:   p.Label,
			MeatPct: p.MeatPct,
			VegPct:  p.VegPct,
			CarbPct: p.CarbPct,
			Note:    p.Note,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleEnergy(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := req.toModel()
	if err != nil {
		badRequest(c, err)
		return
	}
	breakdown, err := mealplan.DailyEnergy(profile)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, toEnergyResponse(breakdown))
}

func (s *Server) handleNormalizeRatio(c *gin.Context) {
	var req ratioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	meat, veg, carb, err := mealplan.Normalize(req.MeatPct, req.VegPct, req.CarbPct)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, ratioRequest{MeatPct: meat, VegPct: veg, CarbPct: carb})
}

func (s *Server) handleRecommend(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := req.toModel()
	if err != nil {
		badRequest(c, err)
		return
	}
	if profile.WeightKg <= 0 || profile.AgeYears <= 0 {
		badRequest(c, fmt.Errorf("weight and age must be > 0"))
		return
	}
	recs := mealplan.RecommendForProfile(profile)
	c.JSON(http.StatusOK, recommendResponse{
		Meats:  recs.Meats,
		Vegs:   recs.Vegs,
		Carbs:  recs.Carbs,
		Treats: recs.Treats,
	})
}

func (s *Server) handlePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	profile, err := req.Profile.toModel()
	if err != nil {
		badRequest(c, err)
		return
	}

	meatPct, vegPct, carbPct := req.MeatPct, req.VegPct, req.CarbPct
	if req.Preset != "" {
		preset, err := catalog.PresetByKey(req.Preset)
		if err != nil {
			badRequest(c, err)
			return
		}
		meatPct, vegPct, carbPct = preset.MeatPct, preset.VegPct, preset.CarbPct
	} else if meatPct == 0 && vegPct == 0 && carbPct == 0 {
		preset, _ := catalog.PresetByKey(catalog.DefaultPresetKey())
		meatPct, vegPct, carbPct = preset.MeatPct, preset.VegPct, preset.CarbPct
	}

	kcalPerGram := req.KcalPerGram
	if kcalPerGram == 0 {
		kcalPerGram = mealplan.DefaultKcalPerGram
	}
	days := req.Days
	if days == 0 {
		days = mealplan.DefaultDays
	}
	seed := int64(mealplan.DefaultSeed)
	if req.Seed != nil {
		seed = *req.Seed
	}
	mode := req.Mode
	if mode == "" {
		mode = model.ModePantry
	}

	result, err := mealplan.BuildPlan(mealplan.PlanInput{
		Profile:     profile,
		MeatPct:     meatPct,
		VegPct:      vegPct,
		CarbPct:     carbPct,
		KcalPerGram: kcalPerGram,
		Pantry: mealplan.Pantry{
			Meats: req.Pantry.Meats,
			Vegs:  req.Pantry.Vegs,
			Carbs: req.Pantry.Carbs,
		},
		Mode: mode,
		Days: days,
		Seed: seed,
	})
	if err != nil {
		badRequest(c, err)
		return
	}

	resp := planResponse{
		Energy:     toEnergyResponse(result.Energy),
		MeatPct:    result.MeatPct,
		VegPct:     result.VegPct,
		CarbPct:    result.CarbPct,
		DailyGrams: result.DailyGrams,
		MeatG:      result.Split.MeatG,
		VegG:       result.Split.VegG,
		CarbG:      result.Split.CarbG,
	}
	for _, day := range result.Days {
		resp.Days = append(resp.Days, dayPlanResponse{
			Day:      day.Day,
			Meat:     day.Meat,
			Veg:      day.Veg,
			Carb:     day.Carb,
			MeatG:    day.MeatG,
			VegG:     day.VegG,
			CarbG:    day.CarbG,
			Kcal:     day.Nutrition.Kcal,
			ProteinG: day.Nutrition.ProteinG,
			FatG:     day.Nutrition.FatG,
			CarbsG:   day.Nutrition.CarbsG,
		})
	}
	c.JSON(http.StatusOK, resp)
}
