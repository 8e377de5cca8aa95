package services

import "encoding/json"

// DetectedFood is the normalized result of one recognition response.
type DetectedFood struct {
	FoodName string
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
}

// The recognition API returns one of several shapes depending on the image.
// Each decoder tries one shape and reports whether it matched and, if so,
// whether the essential fields (name, calories) were present. Decoders run
// in priority order; the first match wins.
type foodDecoder func(raw []byte) (food *DetectedFood, matched bool, essentialsMissing bool)

var foodDecoders = []foodDecoder{
	decodeCategoryNutrition,
	decodeResultsList,
	decodeFlatAnnotation,
}

// ExtractDetectedFood interprets a raw recognition response. It returns
// *UnrecognizedFoodError when no decoder matches, or when the matching
// decoder found no usable name/calories.
func ExtractDetectedFood(raw []byte) (*DetectedFood, error) {
	for _, dec := range foodDecoders {
		food, matched, missing := dec(raw)
		if !matched {
			continue
		}
		if missing {
			return nil, &UnrecognizedFoodError{MissingEssentials: true}
		}
		return food, nil
	}
	return nil, &UnrecognizedFoodError{}
}

// Shape (a): nested category name plus nutrition values, e.g.
// {"category":{"name":"burger"},"nutrition":{"calories":{"value":300},...}}
func decodeCategoryNutrition(raw []byte) (*DetectedFood, bool, bool) {
	var body struct {
		Category *struct {
			Name string `json:"name"`
		} `json:"category"`
		Nutrition *struct {
			Calories *struct {
				Value *float64 `json:"value"`
			} `json:"calories"`
			Protein *struct {
				Value *float64 `json:"value"`
			} `json:"protein"`
			Carbs *struct {
				Value *float64 `json:"value"`
			} `json:"carbs"`
			Fat *struct {
				Value *float64 `json:"value"`
			} `json:"fat"`
		} `json:"nutrition"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Category == nil || body.Nutrition == nil {
		return nil, false, false
	}
	if body.Category.Name == "" || body.Nutrition.Calories == nil || body.Nutrition.Calories.Value == nil {
		return nil, true, true
	}
	food := &DetectedFood{
		FoodName: body.Category.Name,
		Calories: *body.Nutrition.Calories.Value,
	}
	if p := body.Nutrition.Protein; p != nil && p.Value != nil {
		food.Protein = *p.Value
	}
	if c := body.Nutrition.Carbs; c != nil && c.Value != nil {
		food.Carbs = *c.Value
	}
	if f := body.Nutrition.Fat; f != nil && f.Value != nil {
		food.Fats = *f.Value
	}
	return food, true, false
}

// Shape (b): a results list whose first element carries a name and a flat
// calorie value, e.g. {"results":[{"name":"sushi","calories":200}]}
func decodeResultsList(raw []byte) (*DetectedFood, bool, bool) {
	var body struct {
		Results []struct {
			Name     string   `json:"name"`
			Calories *float64 `json:"calories"`
		} `json:"results"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Results) == 0 {
		return nil, false, false
	}
	first := body.Results[0]
	if first.Name == "" || first.Calories == nil {
		return nil, true, true
	}
	return &DetectedFood{FoodName: first.Name, Calories: *first.Calories}, true, false
}

// Shape (c): a flat annotation/calories pair, e.g.
// {"annotation":"sushi","calories":200}
func decodeFlatAnnotation(raw []byte) (*DetectedFood, bool, bool) {
	var body struct {
		Annotation string   `json:"annotation"`
		Calories   *float64 `json:"calories"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || (body.Annotation == "" && body.Calories == nil) {
		return nil, false, false
	}
	if body.Annotation == "" || body.Calories == nil {
		return nil, true, true
	}
	return &DetectedFood{FoodName: body.Annotation, Calories: *body.Calories}, true, false
}
