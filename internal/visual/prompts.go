package visual

import (
	"fmt"
	"strings"
)

const defaultBrandName = "Brand"

var headerProducts = map[string]string{
	"beauty & skincare": "%s skincare product, cosmetic tube, premium beauty package, elegant design, spa aesthetic, natural lighting",
	"fashion & apparel": "%s fashion brand logo, clothing tag, premium fabric texture, stylish design, fashion photography style",
	"health & fitness":  "%s fitness supplement bottle, protein container, gym equipment branded, athletic design, motivational",
	"technology":        "%s tech product, sleek device, modern gadget, innovative design, clean technology aesthetic",
	"food & beverage":   "%s food packaging, premium product label, delicious presentation, restaurant quality, fresh ingredients",
	"home & garden":     "%s home product, garden tool, cozy home decor, domestic lifestyle, comfortable living",
	"travel":            "%s travel gear, luggage tag, adventure equipment, wanderlust design, scenic background",
	"education":         "%s educational material, book cover, learning resource, academic design, knowledge focused",
	"finance":           "%s business card, professional document, secure design, trustworthy appearance, success oriented",
}

const genericHeaderProduct = "%s branded product, professional design, high quality"

var emailVariations = map[string][]string{
	"beauty & skincare": {
		"%s skincare cream jar, top view, white background, luxury cosmetic",
		"%s serum bottle, side profile, elegant glass, premium skincare",
		"%s face mask package, front view, spa treatment, natural ingredients",
		"%s moisturizer tube, angled view, minimalist design, beauty product",
	},
	"fashion & apparel": {
		"%s clothing label, close-up, premium fabric, fashion tag",
		"%s branded accessory, lifestyle shot, stylish design",
		"%s fashion logo, embroidered detail, high-end apparel",
		"%s garment texture, fabric close-up, quality material",
	},
	"health & fitness": {
		"%s supplement bottle, gym setting, protein powder, fitness nutrition",
		"%s sports equipment, branded gear, athletic performance",
		"%s energy drink, active lifestyle, fitness motivation",
		"%s workout accessory, exercise equipment, health brand",
	},
	"technology": {
		"%s tech device, sleek design, modern gadget, innovation",
		"%s software interface, clean UI, digital product",
		"%s electronic component, precision engineering, technology",
		"%s smart device, futuristic design, connectivity",
	},
}

var genericVariations = []string{
	"%s branded product, professional photography",
	"%s logo design, commercial branding",
	"%s product package, retail display",
	"%s business identity, corporate design",
}

func brandName(name string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return defaultBrandName
}

// HeaderPrompt builds the campaign header prompt for a brand.
func HeaderPrompt(name, category string) string {
	tmpl, ok := headerProducts[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		tmpl = genericHeaderProduct
	}
	product := fmt.Sprintf(tmpl, brandName(name))
	return fmt.Sprintf("Product photography of %s, commercial photography, studio lighting, professional branding, high resolution", product)
}

// EmailPrompt builds the banner prompt for the email at a 1-based step. Steps cycle
// through the category's product variations.
func EmailPrompt(name, category string, step int) string {
	variations, ok := emailVariations[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		variations = genericVariations
	}
	idx := (step - 1) % len(variations)
	if idx < 0 {
		idx += len(variations)
	}
	product := fmt.Sprintf(variations[idx], brandName(name))
	return fmt.Sprintf("Product photography of %s, commercial studio lighting, professional branding, high resolution, clean background", product)
}
