package handlers

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/internal/logger"
	"blog-web/cmd/web/clients/blogclient"
	"blog-web/cmd/web/dto"
	"blog-web/cmd/web/services"
	"blog-web/cmd/web/trace"
	"blog-web/preview"
)

const rssDescriptionLen = 200

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Category    string  `xml:"category,omitempty"`
	Description string  `xml:"description"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RSSHandler 는 피드 첫 페이지를 RSS 2.0 으로 내보낸다. API 실패 시 항목 없는 채널을 돌려준다.
func RSSHandler(svc *services.PostService, siteTitle string) gin.HandlerFunc {
	return func(c *gin.Context) {
		posts, err := svc.Latest(c.Request.Context())
		if err != nil {
			logger.ErrorWithFields("failed to build rss", logger.Fields{
				"request_id": trace.RequestIDFromContext(c.Request.Context()),
				"error":      err.Error(),
			})
			_ = c.Error(err)
		}

		origin := requestOrigin(c.Request)
		doc := rssDocument{
			Version: "2.0",
			Channel: rssChannel{
				Title:       siteTitle,
				Link:        origin + "/",
				Description: "Latest stories from " + siteTitle,
			},
		}
		for i, p := range posts {
			item := toRSSItem(origin, p)
			if i == 0 {
				doc.Channel.LastBuildDate = item.PubDate
			}
			doc.Channel.Items = append(doc.Channel.Items, item)
		}

		out, err := xml.MarshalIndent(doc, "", "  ")
		if err != nil {
			c.String(http.StatusInternalServerError, "internal server error")
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", append([]byte(xml.Header), out...))
	}
}

func toRSSItem(origin string, p blogclient.Post) rssItem {
	link := origin + dto.PostHref(p)
	item := rssItem{
		Title:       p.Title,
		Link:        link,
		GUID:        rssGUID{IsPermaLink: true, Value: link},
		Category:    p.Type,
		Description: preview.ToPreview(p.Content, rssDescriptionLen),
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		item.PubDate = t.Format(time.RFC1123Z)
	}
	return item
}

// requestOrigin 은 프록시 뒤에서도 절대 URL 을 만들 수 있도록 X-Forwarded-Proto 를 따른다.
func requestOrigin(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if p := req.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + req.Host
}
