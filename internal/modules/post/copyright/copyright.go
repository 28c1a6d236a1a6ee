package copyright

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/thelucius7/site-core/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// Site is the aggregate data the notice needs.
type Site struct {
	Owner  string `json:"owner" yaml:"owner"`
	WebURL string `json:"web_url" yaml:"web_url"`
}

// Notice is the copyright footer under a post.
type Notice struct {
	Title  string
	Link   string
	Date   time.Time
	Author string
}

const (
	dateLayout = "2006-01-02 15:04"
	license    = "CC BY-NC-SA 4.0"
	licenseURL = "https://creativecommons.org/licenses/by-nc-sa/4.0/"
)

// Build assembles the notice for post. It reports false when the site has
// no web URL, the post is missing or has no category, or the post opted out.
func Build(site Site, post *models.PostModel) (Notice, bool) {
	webURL := strings.TrimRight(strings.TrimSpace(site.WebURL), "/")
	if webURL == "" || post == nil || !post.CopyrightEnabled() {
		return Notice{}, false
	}
	if post.Category == nil || post.Category.Slug == "" || post.Slug == "" {
		return Notice{}, false
	}
	return Notice{
		Title:  post.Title,
		Link:   fmt.Sprintf("%s/posts/%s/%s", webURL, post.Category.Slug, post.Slug),
		Date:   post.LastModified(),
		Author: site.Owner,
	}, true
}

// Markdown renders the notice as a markdown fragment.
func (n Notice) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "文章标题：%s\n", escape(n.Title))
	if n.Author != "" {
		fmt.Fprintf(&b, "文章作者：%s\n", escape(n.Author))
	}
	fmt.Fprintf(&b, "文章链接：<%s>\n", n.Link)
	if !n.Date.IsZero() {
		fmt.Fprintf(&b, "最后修改时间：%s\n", n.Date.Format(dateLayout))
	}
	fmt.Fprintf(&b, "\n商业转载请联系站长获得授权，非商业转载请注明本文出处及文章链接。本文采用 [%s](%s) 进行许可。\n", license, licenseURL)
	return b.String()
}

var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// HTML renders the notice for embedding in a page.
func (n Notice) HTML() (string, error) {
	var out bytes.Buffer
	if err := engine.Convert([]byte(n.Markdown()), &out); err != nil {
		return "", fmt.Errorf("render copyright: %w", err)
	}
	return out.String(), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
	`<`, `\<`,
	`>`, `\>`,
	`#`, `\#`,
	`|`, `\|`,
	`~`, `\~`,
)

func escape(s string) string {
	return markdownEscaper.Replace(s)
}
