package socials

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Link is one profile shown in the site's social row.
type Link struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var links = []Link{
	{ID: "github", URL: "https://github.com/theLucius7", Icon: "Github", Color: "#181717"},
	{ID: "twitter", URL: "https://x.com/theLucius7", Icon: "X", Color: "rgba(36,46,54,1.00)"},
	{ID: "telegram", URL: "https://t.me/theLucius7", Icon: "Telegram", Color: "#0088cc"},
	{ID: "mail", URL: "mailto:lucius7nya@gmail.com", Icon: "Mail", Color: "#D44638"},
	{ID: "bilibili", URL: "https://space.bilibili.com/1814052279", Icon: "Bilibili", Color: "#00A1D6"},
	{ID: "netease", URL: "https://music.163.com/#/user/home?id=1928692426", Icon: "Netease", Color: "#C20C0C"},
	{ID: "steam", URL: "https://steamcommunity.com/id/theLucius7/", Icon: "Steam", Color: "#0F1C30"},
}

// Links returns the social links in display order.
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

// BrandColor parses the link's colour. Both "#rrggbb" and CSS
// "rgba(r,g,b,a)" are accepted; alpha is returned separately.
func BrandColor(l Link) (colorful.Color, float64, error) {
	raw := strings.TrimSpace(l.Color)
	if strings.HasPrefix(raw, "#") {
		c, err := colorful.Hex(raw)
		if err != nil {
			return colorful.Color{}, 0, fmt.Errorf("social %s: %w", l.ID, err)
		}
		return c, 1, nil
	}

	var r, g, b uint8
	var a float64
	if _, err := fmt.Sscanf(strings.ReplaceAll(raw, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
		return colorful.Color{}, 0, fmt.Errorf("social %s: parse colour %q: %w", l.ID, raw, err)
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, a, nil
}
