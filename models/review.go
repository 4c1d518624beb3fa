package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review 商品评价，商品删除时级联删除
type Review struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProductID  uint64    `gorm:"not null;index:idx_reviews_product_id;column:product_id" json:"product_id"`
	Rating     int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5;column:rating" json:"rating"`
	Comment    string    `gorm:"type:text;column:comment" json:"comment"`
	AuthorName string    `gorm:"size:255;not null;column:author_name" json:"author_name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Review) TableName() string {
	return "reviews"
}
