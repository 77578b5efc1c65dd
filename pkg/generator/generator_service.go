package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/entities"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/utils"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/recipe"
)

// Generation refuses to run on junk input: at least 70% of the submitted
// ingredients must validate as real food, and at least two must survive.
const (
	minValidPercentage  = 70.0
	minValidIngredients = 2
)

type (
	GeneratorService interface {
		GenerateRecipes(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.GenerateRecipeResponse, error)
		GetGeneratedRecipes(ctx context.Context, userID string) ([]domain.GeneratedRecipe, error)
		SaveGeneratedRecipe(ctx context.Context, req domain.GeneratedRecipeRequest, userID string) (domain.GeneratedRecipe, error)
		UpdateGeneratedRecipe(ctx context.Context, recipeID string, req domain.GeneratedRecipeRequest, userID string) (domain.GeneratedRecipe, error)
		DeleteGeneratedRecipe(ctx context.Context, recipeID, userID string) error
	}

	generatorService struct {
		generatedRepository GeneratedRecipeRepository
	}
)

func NewGeneratorService(generatedRepository GeneratedRecipeRepository) GeneratorService {
	return &generatorService{generatedRepository: generatedRepository}
}

func (s *generatorService) GenerateRecipes(ctx context.Context, req domain.GenerateRecipeRequest, userID string) (domain.GenerateRecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GenerateRecipeResponse{}, domain.ErrParseUUID
	}

	cleaned := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if trimmed := strings.TrimSpace(ing); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) == 0 {
		return domain.GenerateRecipeResponse{}, domain.ErrNotEnoughIngredients
	}

	valid, invalid, err := s.validateIngredients(ctx, cleaned)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	percentage := float64(len(valid)) / float64(len(cleaned)) * 100
	if percentage < minValidPercentage || len(valid) < minValidIngredients {
		return domain.GenerateRecipeResponse{
			ValidIngredients:   valid,
			InvalidIngredients: invalid,
		}, domain.ErrNotEnoughIngredients
	}

	recipeCount := 3
	if req.Cuisine != "" {
		recipeCount = 1
	}

	rawRecipes, err := s.generateWithAI(ctx, valid, req, recipeCount)
	if err != nil {
		return domain.GenerateRecipeResponse{}, err
	}

	recipes := make([]domain.GeneratedRecipe, 0, len(rawRecipes))
	for _, raw := range rawRecipes {
		generated := rawToEntity(raw, userUUID, req)
		if err := s.generatedRepository.CreateGeneratedRecipe(ctx, generated); err != nil {
			return domain.GenerateRecipeResponse{}, err
		}
		recipes = append(recipes, generatedToDomain(generated))
	}

	return domain.GenerateRecipeResponse{
		Recipes:            recipes,
		ValidIngredients:   valid,
		InvalidIngredients: invalid,
	}, nil
}

func (s *generatorService) GetGeneratedRecipes(ctx context.Context, userID string) ([]domain.GeneratedRecipe, error) {
	recipes, err := s.generatedRepository.GetGeneratedRecipesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GeneratedRecipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, generatedToDomain(r))
	}
	return result, nil
}

func (s *generatorService) SaveGeneratedRecipe(ctx context.Context, req domain.GeneratedRecipeRequest, userID string) (domain.GeneratedRecipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GeneratedRecipe{}, domain.ErrParseUUID
	}

	generated := entities.GeneratedRecipe{
		ID:           uuid.New(),
		UserID:       userUUID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  recipe.MarshalStrings(req.Ingredients),
		Instructions: recipe.MarshalStrings(req.Instructions),
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Cuisine:      req.Cuisine,
		Calories:     req.Calories,
		Nutrition:    recipe.MarshalNutrition(req.Nutrition),
		ImageURL:     req.ImageURL,
		GeneratedAt:  time.Now(),
	}
	if generated.Servings == 0 {
		generated.Servings = 4
	}

	if err := s.generatedRepository.CreateGeneratedRecipe(ctx, &generated); err != nil {
		return domain.GeneratedRecipe{}, err
	}

	return generatedToDomain(&generated), nil
}

func (s *generatorService) UpdateGeneratedRecipe(ctx context.Context, recipeID string, req domain.GeneratedRecipeRequest, userID string) (domain.GeneratedRecipe, error) {
	generated, err := s.generatedRepository.GetGeneratedRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GeneratedRecipe{}, domain.ErrGeneratedRecipeNotFound
		}
		return domain.GeneratedRecipe{}, err
	}

	// generated recipes are private; another user's recipe looks absent
	if generated.UserID.String() != userID {
		return domain.GeneratedRecipe{}, domain.ErrGeneratedRecipeNotFound
	}

	generated.Title = req.Title
	generated.Description = req.Description
	generated.Ingredients = recipe.MarshalStrings(req.Ingredients)
	generated.Instructions = recipe.MarshalStrings(req.Instructions)
	generated.CookingTime = req.CookingTime
	if req.Servings > 0 {
		generated.Servings = req.Servings
	}
	generated.Difficulty = req.Difficulty
	generated.Cuisine = req.Cuisine
	generated.Calories = req.Calories
	generated.Nutrition = recipe.MarshalNutrition(req.Nutrition)
	if req.ImageURL != "" {
		generated.ImageURL = req.ImageURL
	}

	if err := s.generatedRepository.UpdateGeneratedRecipe(ctx, generated); err != nil {
		return domain.GeneratedRecipe{}, err
	}

	return generatedToDomain(generated), nil
}

func (s *generatorService) DeleteGeneratedRecipe(ctx context.Context, recipeID, userID string) error {
	generated, err := s.generatedRepository.GetGeneratedRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrGeneratedRecipeNotFound
		}
		return err
	}

	if generated.UserID.String() != userID {
		return domain.ErrGeneratedRecipeNotFound
	}

	return s.generatedRepository.DeleteGeneratedRecipe(ctx, recipeID)
}

func (s *generatorService) validateIngredients(ctx context.Context, ingredients []string) ([]string, []string, error) {
	var gibberish, candidates []string
	for _, ing := range ingredients {
		if isLikelyGibberish(ing) {
			gibberish = append(gibberish, ing)
		} else {
			candidates = append(candidates, ing)
		}
	}

	if len(candidates) == 0 {
		return nil, ingredients, nil
	}

	prompt := fmt.Sprintf(
		"You are an ultra-strict food ingredient validator. Your only job is to identify real, edible food items. "+
			"Accept an item only if it is clearly a food ingredient (e.g. \"chicken\", \"potato\", \"onion\", \"rice\"). "+
			"Accept language variations only if they are common food names (e.g. \"aloo\" for potato, \"piyaz\" for onion). "+
			"Reject anything that looks like random typing (e.g. \"sffds\", \"strt\"), has unusual letter combinations, "+
			"or that you are not completely certain humans eat. "+
			"Validate these ingredients: %s. "+
			"Respond with a single valid JSON object with two fields, \"valid\" and \"invalid\", "+
			"each a JSON array of strings, and nothing else.",
		strings.Join(candidates, ", "),
	)

	responseText, err := s.callGemini(ctx, prompt)
	if err != nil {
		return nil, nil, err
	}

	startIdx := strings.Index(responseText, "{")
	endIdx := strings.LastIndex(responseText, "}")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		return nil, nil, domain.ErrAIServiceFailed
	}

	var verdict struct {
		Valid   []string `json:"valid"`
		Invalid []string `json:"invalid"`
	}
	if err := json.Unmarshal([]byte(responseText[startIdx:endIdx+1]), &verdict); err != nil {
		return nil, nil, domain.ErrAIServiceFailed
	}

	invalid := append(gibberish, verdict.Invalid...)
	return verdict.Valid, invalid, nil
}

func (s *generatorService) generateWithAI(ctx context.Context, ingredients []string, req domain.GenerateRecipeRequest, count int) ([]map[string]interface{}, error) {
	joined := strings.Join(ingredients, ", ")

	var constraints []string
	if req.Cuisine != "" {
		constraints = append(constraints, fmt.Sprintf("The cuisine must be %s.", req.Cuisine))
	}
	if req.Servings > 0 {
		constraints = append(constraints, fmt.Sprintf("Each recipe serves %d.", req.Servings))
	}
	if req.Difficulty != "" {
		constraints = append(constraints, fmt.Sprintf("Difficulty should be %s.", req.Difficulty))
	}
	if req.MaxCalories > 0 {
		constraints = append(constraints, fmt.Sprintf("Keep each recipe under %d calories per serving.", req.MaxCalories))
	}

	prompt := fmt.Sprintf(
		"You are a recipe generator with strict rules. Create %d recipe(s) using ONLY these exact ingredients: %s. "+
			"Do not add, invent, or substitute ingredients; only salt, pepper, water and cooking oil may be assumed. %s "+
			"Return a valid JSON array of recipe objects with these fields: "+
			"title, description, ingredients (array of strings), instructions (array of strings), "+
			"cookingTime (minutes, number), servings (number), difficulty (Easy, Medium or Hard), cuisine, calories (number), "+
			"nutrition (object with string fields protein, carbs, fat, fiber). "+
			"Do not include any explanations or text outside of the JSON array.",
		count,
		joined,
		strings.Join(constraints, " "),
	)

	responseText, err := s.callGemini(ctx, prompt)
	if err != nil {
		return nil, err
	}

	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		startIdx = strings.Index(responseText, "{")
		endIdx = strings.LastIndex(responseText, "}")
		if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
			return nil, domain.ErrAIServiceFailed
		}
		responseText = "[" + responseText[startIdx:endIdx+1] + "]"
	} else {
		responseText = responseText[startIdx : endIdx+1]
	}

	var rawRecipes []map[string]interface{}
	if err := json.Unmarshal([]byte(responseText), &rawRecipes); err != nil {
		return nil, domain.ErrAIServiceFailed
	}
	if len(rawRecipes) == 0 {
		return nil, domain.ErrAIServiceFailed
	}

	return rawRecipes, nil
}

func (s *generatorService) callGemini(ctx context.Context, prompt string) (string, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return "", fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", domain.ErrAIServiceFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", domain.ErrAIServiceFailed
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", domain.ErrAIServiceFailed
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrAIServiceFailed
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

var (
	commonShortFoods = map[string]bool{
		"egg": true, "tea": true, "pea": true, "rye": true,
		"fig": true, "yam": true, "nut": true, "ham": true,
	}

	consonantRunPattern = regexp.MustCompile(`(?i)[^aeiou\s]{4,}`)
	vowelPattern        = regexp.MustCompile(`(?i)[aeiou]`)
	allVowelsPattern    = regexp.MustCompile(`(?i)^[aeiou]+$`)
	keySmashPatterns    = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^s[trf]{3,}$`),
		regexp.MustCompile(`(?i)^[strf]{4,}$`),
		regexp.MustCompile(`(?i)(ff|tt|rr|ss){2,}`),
	}
)

// isLikelyGibberish is a cheap pre-filter so keyboard mashing never reaches
// the AI validator.
func isLikelyGibberish(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))

	if len(trimmed) < 3 {
		return !commonShortFoods[trimmed]
	}

	if hasRepeatedRun(trimmed, 3) || hasRepeatedPair(trimmed, 3) {
		return true
	}

	if consonantRunPattern.MatchString(trimmed) {
		return true
	}

	if !vowelPattern.MatchString(trimmed) {
		return true
	}
	if len(trimmed) > 3 && allVowelsPattern.MatchString(trimmed) {
		return true
	}

	for _, pattern := range keySmashPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}

	return false
}

// hasRepeatedRun reports n or more consecutive identical characters.
func hasRepeatedRun(s string, n int) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			run++
			if run >= n {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}

// hasRepeatedPair reports n or more consecutive identical two-character pairs.
func hasRepeatedPair(s string, n int) bool {
	if len(s) < 2*n {
		return false
	}
	for i := 0; i+2*n <= len(s); i++ {
		pair := s[i : i+2]
		repeats := 1
		for j := i + 2; j+2 <= len(s); j += 2 {
			if s[j:j+2] != pair {
				break
			}
			repeats++
		}
		if repeats >= n {
			return true
		}
	}
	return false
}

func rawToEntity(raw map[string]interface{}, userID uuid.UUID, req domain.GenerateRecipeRequest) *entities.GeneratedRecipe {
	title, _ := raw["title"].(string)
	if title == "" {
		title = "Untitled Recipe"
	}
	description, _ := raw["description"].(string)
	cookingTime, _ := raw["cookingTime"].(float64)
	servings, _ := raw["servings"].(float64)
	if servings == 0 {
		if req.Servings > 0 {
			servings = float64(req.Servings)
		} else {
			servings = 2
		}
	}
	difficulty, _ := raw["difficulty"].(string)
	switch difficulty {
	case "Easy", "Medium", "Hard":
	default:
		difficulty = "Easy"
	}
	cuisine, _ := raw["cuisine"].(string)
	if cuisine == "" {
		cuisine = req.Cuisine
	}
	calories, _ := raw["calories"].(float64)

	nutrition := domain.Nutrition{Protein: "0g", Carbs: "0g", Fat: "0g", Fiber: "0g"}
	if rawNutrition, ok := raw["nutrition"].(map[string]interface{}); ok {
		if v, ok := rawNutrition["protein"].(string); ok && v != "" {
			nutrition.Protein = v
		}
		if v, ok := rawNutrition["carbs"].(string); ok && v != "" {
			nutrition.Carbs = v
		}
		if v, ok := rawNutrition["fat"].(string); ok && v != "" {
			nutrition.Fat = v
		}
		if v, ok := rawNutrition["fiber"].(string); ok && v != "" {
			nutrition.Fiber = v
		}
	}

	return &entities.GeneratedRecipe{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Description:  description,
		Ingredients:  recipe.MarshalStrings(toStrings(raw["ingredients"])),
		Instructions: recipe.MarshalStrings(toStrings(raw["instructions"])),
		CookingTime:  int(cookingTime),
		Servings:     int(servings),
		Difficulty:   difficulty,
		Cuisine:      cuisine,
		Calories:     int(calories),
		Nutrition:    recipe.MarshalNutrition(nutrition),
		GeneratedAt:  time.Now(),
	}
}

func toStrings(value interface{}) []string {
	items, ok := value.([]interface{})
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, fmt.Sprintf("%v", item))
	}
	return result
}

func generatedToDomain(generated *entities.GeneratedRecipe) domain.GeneratedRecipe {
	return domain.GeneratedRecipe{
		ID:           generated.ID.String(),
		UserID:       generated.UserID.String(),
		Title:        generated.Title,
		Description:  generated.Description,
		Ingredients:  recipe.UnmarshalStrings(generated.Ingredients),
		Instructions: recipe.UnmarshalStrings(generated.Instructions),
		CookingTime:  generated.CookingTime,
		Servings:     generated.Servings,
		Difficulty:   generated.Difficulty,
		Cuisine:      generated.Cuisine,
		Calories:     generated.Calories,
		Nutrition:    recipe.UnmarshalNutrition(generated.Nutrition),
		ImageURL:     generated.ImageURL,
		GeneratedAt:  generated.GeneratedAt,
	}
}
