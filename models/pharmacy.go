package models

type Pharmacy struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type PharmacyResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (p *Pharmacy) Response() PharmacyResponse {
	return PharmacyResponse{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}
}
