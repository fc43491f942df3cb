package models

// Question's json tags are the wire shape every listing endpoint returns;
// clients depend on exactly these five fields.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `json:"difficulty"`
}
