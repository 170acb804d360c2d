// Package fooddb is a small built-in reference table of common foods with
// per-serving nutrition facts. It backs food lookup and search; it is
// static data, not user state.
package fooddb

import (
	"sort"
	"strings"
)

// Food is one reference entry. Macros are grams per serving.
type Food struct {
	Name        string
	Calories    int
	Protein     int
	Carbs       int
	Fat         int
	Category    string
	Benefits    []string
	Description string
	ServingSize string
}

var foods = []Food{
	{
		Name: "Avocado", Calories: 234, Protein: 4, Carbs: 12, Fat: 21,
		Category:    "Fruits",
		Benefits:    []string{"Heart Health", "Weight Management", "Nutrient Dense"},
		Description: "Rich in healthy monounsaturated fats, fiber, and potassium. Great for heart health and provides sustained energy.",
		ServingSize: "1 medium (150g)",
	},
	{
		Name: "Salmon", Calories: 206, Protein: 22, Carbs: 0, Fat: 12,
		Category:    "Protein",
		Benefits:    []string{"Omega-3 Fatty Acids", "Brain Health", "Anti-inflammatory"},
		Description: "Excellent source of high-quality protein and omega-3 fatty acids. Supports brain function and reduces inflammation.",
		ServingSize: "100g fillet",
	},
	{
		Name: "Quinoa", Calories: 222, Protein: 8, Carbs: 39, Fat: 4,
		Category:    "Grains",
		Benefits:    []string{"Complete Protein", "Gluten-Free", "High Fiber"},
		Description: "A complete protein grain containing all essential amino acids. Perfect for vegetarians and those avoiding gluten.",
		ServingSize: "1 cup cooked (185g)",
	},
	{
		Name: "Blueberries", Calories: 84, Protein: 1, Carbs: 21, Fat: 0,
		Category:    "Fruits",
		Benefits:    []string{"Antioxidants", "Brain Health", "Low Calorie"},
		Description: "Packed with antioxidants and vitamin C. Known to improve memory and cognitive function.",
		ServingSize: "1 cup (148g)",
	},
	{
		Name: "Greek Yogurt", Calories: 100, Protein: 17, Carbs: 6, Fat: 0,
		Category:    "Dairy",
		Benefits:    []string{"Probiotics", "High Protein", "Bone Health"},
		Description: "Rich in probiotics and protein. Supports digestive health and provides sustained energy.",
		ServingSize: "170g container",
	},
	{
		Name: "Sweet Potato", Calories: 112, Protein: 2, Carbs: 26, Fat: 0,
		Category:    "Vegetables",
		Benefits:    []string{"Vitamin A", "Complex Carbs", "Antioxidants"},
		Description: "High in beta-carotene and complex carbohydrates. Provides steady energy and supports eye health.",
		ServingSize: "1 medium (128g)",
	},
	{
		Name: "Spinach", Calories: 23, Protein: 3, Carbs: 4, Fat: 0,
		Category:    "Vegetables",
		Benefits:    []string{"Iron", "Folate", "Low Calorie"},
		Description: "Nutrient-dense leafy green rich in iron, folate, and vitamins. Perfect for salads and smoothies.",
		ServingSize: "100g raw",
	},
	{
		Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fat: 50,
		Category:    "Nuts",
		Benefits:    []string{"Healthy Fats", "Vitamin E", "Heart Health"},
		Description: "Rich in healthy fats, protein, and vitamin E. Great for heart health and sustained energy.",
		ServingSize: "100g (about 23 nuts)",
	},
}

// All returns every reference entry.
func All() []Food {
	return append([]Food(nil), foods...)
}

// Categories returns the distinct categories in alphabetical order.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, f := range foods {
		if _, ok := seen[f.Category]; !ok {
			seen[f.Category] = struct{}{}
			out = append(out, f.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Lookup returns the entry whose name matches, case-insensitively.
func Lookup(name string) (Food, bool) {
	for _, f := range foods {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return Food{}, false
}

// Search returns entries whose name or benefits contain the term,
// case-insensitively, optionally restricted to one category. An empty
// category means all categories.
func Search(term, category string) []Food {
	term = strings.ToLower(term)
	var out []Food
	for _, f := range foods {
		if category != "" && f.Category != category {
			continue
		}
		if term != "" && !matches(f, term) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matches(f Food, term string) bool {
	if strings.Contains(strings.ToLower(f.Name), term) {
		return true
	}
	for _, b := range f.Benefits {
		if strings.Contains(strings.ToLower(b), term) {
			return true
		}
	}
	return false
}
