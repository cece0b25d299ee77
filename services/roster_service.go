package services

import (
	"log"

	"mahjongmaven/models"

	"gorm.io/gorm"
)

// defaultRoster seeds an empty participants table so a fresh install
// starts with a playable group.
var defaultRoster = []models.Participant{
	{ID: "1", Name: "Eleanor", AvatarURL: "https://picsum.photos/id/1027/100/100"},
	{ID: "2", Name: "Beatrice", AvatarURL: "https://picsum.photos/id/1011/100/100"},
	{ID: "3", Name: "Susan", AvatarURL: "https://picsum.photos/id/1012/100/100"},
	{ID: "4", Name: "Linda", AvatarURL: "https://picsum.photos/id/1013/100/100"},
	{ID: "5", Name: "Judy", AvatarURL: "https://picsum.photos/id/1014/100/100"},
	{ID: "6", Name: "Carol", AvatarURL: "https://picsum.photos/id/1025/100/100"},
}

// LoadRoster reads the participant roster in canonical (insertion)
// order, seeding the default group when the table is empty. The
// returned roster is fixed for the lifetime of the process; live
// scheduling state never goes back to the database.
func LoadRoster(db *gorm.DB) ([]models.Participant, error) {
	var count int64
	if err := db.Model(&models.Participant{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		if err := db.Create(&defaultRoster).Error; err != nil {
			return nil, err
		}
		log.Printf("Seeded default roster with %d participants", len(defaultRoster))
	}

	var roster []models.Participant
	if err := db.Order("created_at, id").Find(&roster).Error; err != nil {
		return nil, err
	}
	return roster, nil
}
