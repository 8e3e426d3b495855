package models

type KanbanColumn struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	Title      string `gorm:"size:100;not null" json:"title"`
	Color      string `gorm:"size:30;default:'gray'" json:"color"`
	OrderIndex int    `gorm:"default:0" json:"order_index"`
	Ativo      bool   `json:"ativo"`
}

func (KanbanColumn) TableName() string { return "kanban_columns" }
