package task

import (
	"math/rand"
	"time"
)

// Task is the sole persisted entity. ID is a timestamp-derived integer,
// unique across the live collection; Category is rolled once at creation
// and never changes afterwards.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	Category  Category  `json:"category"`
}

type Category string

const CategoryFire Category = "Fire"
const CategoryWater Category = "Water"
const CategoryGrass Category = "Grass"
const CategoryElectric Category = "Electric"
const CategoryPsychic Category = "Psychic"
const CategoryNormal Category = "Normal"

// AllCategories returns the six fixed category labels.
func AllCategories() []Category {
	return []Category{
		CategoryFire,
		CategoryWater,
		CategoryGrass,
		CategoryElectric,
		CategoryPsychic,
		CategoryNormal,
	}
}

func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// RandomCategory picks one of the fixed labels uniformly from r.
func RandomCategory(r *rand.Rand) Category {
	categories := AllCategories()
	return categories[r.Intn(len(categories))]
}
