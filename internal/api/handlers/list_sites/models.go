package list_sites

import "github.com/m04kA/MHT-StorefrontService/internal/domain"

// SiteResponse HTTP модель локации каталога
type SiteResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	NameArabic   string  `json:"nameArabic"`
	Description  string  `json:"description"`
	Significance string  `json:"significance"`
	Duration     string  `json:"duration"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Rating       float64 `json:"rating"`
}

// SiteListResponse HTTP модель списка локаций
type SiteListResponse struct {
	Sites []SiteResponse `json:"sites"`
}

// FromDomainSite конвертирует domain локацию в HTTP модель
func FromDomainSite(site *domain.Site) SiteResponse {
	return SiteResponse{
		ID:           site.ID,
		Name:         site.Name,
		NameArabic:   site.NameArabic,
		Description:  site.Description,
		Significance: site.Significance,
		Duration:     site.Duration,
		Image:        site.Image,
		Price:        site.Price,
		Rating:       site.Rating,
	}
}

// FromDomainSiteList конвертирует список domain локаций в HTTP модель
func FromDomainSiteList(sites []*domain.Site) *SiteListResponse {
	resp := &SiteListResponse{Sites: make([]SiteResponse, 0, len(sites))}
	for _, site := range sites {
		resp.Sites = append(resp.Sites, FromDomainSite(site))
	}
	return resp
}
