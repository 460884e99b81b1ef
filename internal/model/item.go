package model

// MenuItem represents a dish or drink on the restaurant's menu.
type MenuItem struct {
	ID          int64   `json:"id" db:"id"`
	CategoryID  *int64  `json:"categoria_id,omitempty" db:"categoria_id"`
	Category    string  `json:"categoria,omitempty" db:"categoria"`
	Name        string  `json:"nome" db:"nome"`
	Description string  `json:"descricao" db:"descricao"`
	Price       float64 `json:"preco" db:"preco"`
	Available   bool    `json:"disponivel" db:"disponivel"`
	ImageURL    *string `json:"imagem_url" db:"imagem_url"`
}
