package gateway

import (
	"net/http"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type productDTO struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"original_price,omitempty"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Images        []string `json:"images,omitempty"`
	Features      []string `json:"features,omitempty"`
	InStock       bool     `json:"in_stock"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	IsNew         bool     `json:"is_new"`
	IsFeatured    bool     `json:"is_featured"`
}

func toProductDTO(p *catalogdomain.Product) productDTO {
	dto := productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price.StringFixed(2),
		Category:    p.Category,
		Description: p.Description,
		Image:       p.Image,
		Images:      p.Images,
		Features:    p.Features,
		InStock:     p.InStock,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		IsNew:       p.IsNew,
		IsFeatured:  p.IsFeatured,
	}
	if p.OriginalPrice != nil {
		dto.OriginalPrice = p.OriginalPrice.StringFixed(2)
	}
	return dto
}

func (s *Server) listProducts(c *gin.Context) {
	q := catalogapp.DefaultQuery()
	if v := c.Query("category"); v != "" {
		q.Category = v
	}
	if v := c.Query("sort"); v != "" {
		q.Sort = catalogapp.SortKey(v)
	}
	if v := c.Query("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			writeError(c, catalogapp.ErrInvalidInput)
			return
		}
		q.MinPrice = d
	}
	if v := c.Query("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			writeError(c, catalogapp.ErrInvalidInput)
			return
		}
		q.MaxPrice = d
	}

	products, err := s.catalog.Search(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]productDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (s *Server) getProduct(c *gin.Context) {
	p, err := s.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductDTO(p))
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.catalog.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	type categoryDTO struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	out := make([]categoryDTO, 0, len(cats))
	for _, cat := range cats {
		out = append(out, categoryDTO{ID: cat.ID, Name: cat.Name, Count: cat.Count})
	}
	c.JSON(http.StatusOK, gin.H{"categories": out})
}
