// Package plans holds the fixed diet/workout catalog and the body-type
// selector. Selection is a pure lookup: no randomness, no account state.
package plans

import "errors"

var ErrInvalidBodyType = errors.New("invalid body type specified")

type Meal struct {
	Title string   `json:"title"`
	Time  string   `json:"time"`
	Steps []string `json:"steps"`
}

type Exercise struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

type Workout struct {
	Level     string     `json:"level"`
	Desc      string     `json:"desc"`
	Exercises []Exercise `json:"exercises"`
}

type Bundle struct {
	Diet     []Meal    `json:"diet"`
	Workouts []Workout `json:"workouts"`
}

var catalog = map[string]Bundle{
	"ectomorph": {
		Diet: []Meal{
			{
				Title: "Overnight Oats",
				Time:  "Prep 5 min",
				Steps: []string{
					"Combine oats, milk, protein powder.",
					"Stir in peanut butter and honey.",
					"Top with banana and refrigerate.",
				},
			},
			{
				Title: "High-Calorie Chicken Bowl",
				Time:  "25 min",
				Steps: []string{
					"Marinate & grill 200g chicken.",
					"Serve with 1.5 cups rice and veggies.",
				},
			},
		},
		Workouts: []Workout{
			{
				Level: "Beginner (3x/week) — Full-body compound",
				Desc:  "Focus on heavy compound lifts.",
				Exercises: []Exercise{
					{Name: "Back Squat", Steps: []string{"3 working sets × 6–8 reps."}},
					{Name: "Deadlift", Steps: []string{"3 sets × 4–6 reps."}},
					{Name: "Bench Press", Steps: []string{"3 sets × 6–8 reps."}},
				},
			},
		},
	},
	"mesomorph": {
		Diet: []Meal{
			{
				Title: "Veggie Omelet",
				Time:  "10 min",
				Steps: []string{
					"Whisk 3 eggs.",
					"Sauté veggies, pour eggs, cook. Serve with toast.",
				},
			},
			{
				Title: "Grilled Chicken + Sweet Potato",
				Time:  "30 min",
				Steps: []string{
					"Grill chicken breasts.",
					"Roast sweet potato wedges. Serve with greens.",
				},
			},
		},
		Workouts: []Workout{
			{
				Level: "Push / Pull / Legs (4x week)",
				Desc:  "Balanced hypertrophy & strength.",
				Exercises: []Exercise{
					{Name: "Squat", Steps: []string{"4 sets × 6–8 reps."}},
					{Name: "Incline Bench", Steps: []string{"4 sets × 8–10 reps."}},
					{Name: "Barbell Row", Steps: []string{"3 sets × 8–10 reps."}},
				},
			},
		},
	},
	"endomorph": {
		Diet: []Meal{
			{
				Title: "Greek Yogurt Bowl",
				Time:  "5 min",
				Steps: []string{"200g Greek yogurt, add chia seeds and berries."},
			},
			{
				Title: "Grilled Fish + Large Salad",
				Time:  "20 min",
				Steps: []string{"Grill fish fillet, serve over mixed greens."},
			},
		},
		Workouts: []Workout{
			{
				Level: "Circuit + Strength (Beginner)",
				Desc:  "Cardio-focused circuits.",
				Exercises: []Exercise{
					{
						Name:  "HIIT Sprints",
						Steps: []string{"8–10 rounds of 30s sprint / 60s walk."},
					},
					{
						Name:  "Burpees Circuit",
						Steps: []string{"3 rounds: 12 burpees, 20 squats, 30s plank."},
					},
				},
			},
		},
	},
}

// Select returns the fixed bundle for the given body type.
func Select(bodyType string) (Bundle, error) {
	bundle, ok := catalog[bodyType]
	if !ok {
		return Bundle{}, ErrInvalidBodyType
	}
	return bundle, nil
}
