package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AnthonyAlbero/TCC-fittracker/internal/domain"
)

// defaultFoods is the starter catalogue; nutritional values are per the
// standard portion in grams.
var defaultFoods = []domain.Food{
	{Name: "Grilled Chicken Breast", Category: "Protein", Calories: 165, PortionGrams: 100, Protein: 31, Carbs: 0, Fat: 3.6},
	{Name: "Tilapia Fillet", Category: "Protein", Calories: 96, PortionGrams: 100, Protein: 20, Carbs: 0, Fat: 1.7},
	{Name: "Canned Tuna (in water)", Category: "Protein", Calories: 116, PortionGrams: 100, Protein: 26, Carbs: 0, Fat: 0.8},
	{Name: "Boiled Egg", Category: "Protein", Calories: 155, PortionGrams: 100, Protein: 13, Carbs: 1.1, Fat: 11},
	{Name: "Turkey Breast", Category: "Protein", Calories: 111, PortionGrams: 100, Protein: 24, Carbs: 0.5, Fat: 1.7},
	{Name: "Lean Ground Beef", Category: "Protein", Calories: 176, PortionGrams: 100, Protein: 21, Carbs: 0, Fat: 10},
	{Name: "Salmon", Category: "Protein", Calories: 208, PortionGrams: 100, Protein: 20, Carbs: 0, Fat: 13},

	{Name: "Cooked White Rice", Category: "Carbohydrate", Calories: 130, PortionGrams: 100, Protein: 2.7, Carbs: 28, Fat: 0.3},
	{Name: "Cooked Brown Rice", Category: "Carbohydrate", Calories: 112, PortionGrams: 100, Protein: 2.6, Carbs: 24, Fat: 0.9},
	{Name: "Boiled Sweet Potato", Category: "Carbohydrate", Calories: 86, PortionGrams: 100, Protein: 1.6, Carbs: 20, Fat: 0.1},
	{Name: "Whole Wheat Pasta", Category: "Carbohydrate", Calories: 124, PortionGrams: 100, Protein: 5.3, Carbs: 26, Fat: 0.5},
	{Name: "Whole Wheat Bread", Category: "Carbohydrate", Calories: 247, PortionGrams: 100, Protein: 13, Carbs: 41, Fat: 3.4},
	{Name: "Oats", Category: "Carbohydrate", Calories: 389, PortionGrams: 100, Protein: 17, Carbs: 66, Fat: 6.9},
	{Name: "Tapioca", Category: "Carbohydrate", Calories: 358, PortionGrams: 100, Protein: 0.6, Carbs: 88, Fat: 0.2},

	{Name: "Steamed Broccoli", Category: "Vegetable", Calories: 35, PortionGrams: 100, Protein: 2.4, Carbs: 7, Fat: 0.4},
	{Name: "Lettuce", Category: "Vegetable", Calories: 14, PortionGrams: 100, Protein: 1.4, Carbs: 2.9, Fat: 0.1},
	{Name: "Tomato", Category: "Vegetable", Calories: 18, PortionGrams: 100, Protein: 0.9, Carbs: 3.9, Fat: 0.2},
	{Name: "Carrot", Category: "Vegetable", Calories: 41, PortionGrams: 100, Protein: 0.9, Carbs: 10, Fat: 0.2},
	{Name: "Zucchini", Category: "Vegetable", Calories: 17, PortionGrams: 100, Protein: 1.2, Carbs: 3.1, Fat: 0.3},

	{Name: "Banana", Category: "Fruit", Calories: 89, PortionGrams: 100, Protein: 1.1, Carbs: 23, Fat: 0.3},
	{Name: "Apple", Category: "Fruit", Calories: 52, PortionGrams: 100, Protein: 0.3, Carbs: 14, Fat: 0.2},
	{Name: "Strawberry", Category: "Fruit", Calories: 32, PortionGrams: 100, Protein: 0.7, Carbs: 7.7, Fat: 0.3},
	{Name: "Avocado", Category: "Fruit", Calories: 160, PortionGrams: 100, Protein: 2, Carbs: 8.5, Fat: 15},
	{Name: "Papaya", Category: "Fruit", Calories: 43, PortionGrams: 100, Protein: 0.5, Carbs: 11, Fat: 0.3},

	{Name: "Plain Greek Yogurt", Category: "Dairy", Calories: 59, PortionGrams: 100, Protein: 10, Carbs: 3.6, Fat: 0.4},
	{Name: "Cottage Cheese", Category: "Dairy", Calories: 98, PortionGrams: 100, Protein: 11, Carbs: 3.4, Fat: 4.3},
	{Name: "Peanuts", Category: "Nuts", Calories: 567, PortionGrams: 100, Protein: 26, Carbs: 16, Fat: 49},
	{Name: "Cashew Nuts", Category: "Nuts", Calories: 553, PortionGrams: 100, Protein: 18, Carbs: 30, Fat: 44},
	{Name: "Whey Protein", Category: "Supplement", Calories: 120, PortionGrams: 30, Protein: 24, Carbs: 3, Fat: 1.5},
}

// defaultExercises is the starter catalogue; expenditure is kcal/minute for a
// reference 70 kg person.
var defaultExercises = []domain.Exercise{
	{Name: "Running (8 km/h)", Category: "Cardio", CaloriesPerMinute: 8.0, Intensity: "Moderate"},
	{Name: "Running (12 km/h)", Category: "Cardio", CaloriesPerMinute: 12.0, Intensity: "Intense"},
	{Name: "Brisk Walking", Category: "Cardio", CaloriesPerMinute: 4.5, Intensity: "Light"},
	{Name: "Cycling (20 km/h)", Category: "Cardio", CaloriesPerMinute: 8.5, Intensity: "Moderate"},
	{Name: "Swimming (freestyle)", Category: "Cardio", CaloriesPerMinute: 11.0, Intensity: "Intense"},
	{Name: "Jump Rope", Category: "Cardio", CaloriesPerMinute: 12.0, Intensity: "Intense"},
	{Name: "Elliptical", Category: "Cardio", CaloriesPerMinute: 7.0, Intensity: "Moderate"},
	{Name: "Rowing", Category: "Cardio", CaloriesPerMinute: 9.0, Intensity: "Intense"},

	{Name: "Weight Training (general)", Category: "Strength", CaloriesPerMinute: 6.0, Intensity: "Moderate"},
	{Name: "Intense Weight Training", Category: "Strength", CaloriesPerMinute: 8.0, Intensity: "Intense"},
	{Name: "Push-ups", Category: "Strength", CaloriesPerMinute: 7.0, Intensity: "Moderate"},
	{Name: "Squats", Category: "Strength", CaloriesPerMinute: 8.0, Intensity: "Intense"},
	{Name: "Plank", Category: "Strength", CaloriesPerMinute: 5.0, Intensity: "Moderate"},

	{Name: "Yoga", Category: "Flexibility", CaloriesPerMinute: 3.0, Intensity: "Light"},
	{Name: "Pilates", Category: "Flexibility", CaloriesPerMinute: 4.0, Intensity: "Light"},
	{Name: "Stretching", Category: "Flexibility", CaloriesPerMinute: 2.5, Intensity: "Light"},

	{Name: "Soccer", Category: "Sport", CaloriesPerMinute: 9.0, Intensity: "Intense"},
	{Name: "Volleyball", Category: "Sport", CaloriesPerMinute: 4.0, Intensity: "Moderate"},
	{Name: "Basketball", Category: "Sport", CaloriesPerMinute: 8.0, Intensity: "Intense"},
	{Name: "Tennis", Category: "Sport", CaloriesPerMinute: 7.5, Intensity: "Moderate"},
	{Name: "Dancing", Category: "Sport", CaloriesPerMinute: 5.5, Intensity: "Moderate"},

	{Name: "HIIT", Category: "Cardio", CaloriesPerMinute: 14.0, Intensity: "Intense"},
	{Name: "CrossFit", Category: "Strength", CaloriesPerMinute: 13.0, Intensity: "Intense"},
	{Name: "Burpees", Category: "Cardio", CaloriesPerMinute: 12.5, Intensity: "Intense"},
}

// Seed inserts the starter catalogues when the corresponding tables are
// empty. It is safe to call on every startup.
func Seed(ctx context.Context, foods *FoodStore, exercises *ExerciseStore, logger *slog.Logger) error {
	foodCount, err := foods.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check food catalogue: %w", err)
	}
	if foodCount == 0 {
		logger.Info("seeding food catalogue", "count", len(defaultFoods))
		for _, f := range defaultFoods {
			if _, err := foods.Create(ctx, f); err != nil {
				return fmt.Errorf("failed to seed food %q: %w", f.Name, err)
			}
		}
	}

	exerciseCount, err := exercises.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check exercise catalogue: %w", err)
	}
	if exerciseCount == 0 {
		logger.Info("seeding exercise catalogue", "count", len(defaultExercises))
		for _, e := range defaultExercises {
			if _, err := exercises.Create(ctx, e); err != nil {
				return fmt.Errorf("failed to seed exercise %q: %w", e.Name, err)
			}
		}
	}

	return nil
}
