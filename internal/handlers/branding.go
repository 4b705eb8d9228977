package handlers

import (
	"github.com/gofiber/fiber/v3"

	"curcunapanel/internal/config"
)

// BrandingData contains site branding information for templates.
type BrandingData struct {
	SiteTitle   string
	SiteTagline string
}

// GetBrandingData returns branding data from config for template rendering.
func GetBrandingData(cfg *config.Config) BrandingData {
	return BrandingData{
		SiteTitle:   cfg.SiteTitle,
		SiteTagline: cfg.SiteTagline,
	}
}

// MergeBranding adds branding data to a fiber.Map for template rendering.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	b := GetBrandingData(cfg)
	data["SiteTitle"] = b.SiteTitle
	data["SiteTagline"] = b.SiteTagline
	return data
}
