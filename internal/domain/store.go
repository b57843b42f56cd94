package domain

type Store struct {
	ID          int32  `json:"store_id"`
	Name        string `json:"store_name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}
