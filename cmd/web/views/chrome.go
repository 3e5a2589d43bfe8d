package views

// NavItem 은 네비게이션 바 링크 하나다.
type NavItem struct {
	Href  string
	Label string
	Icon  string
}

// BannerStat 은 홈 배너의 숫자 항목이다.
type BannerStat struct {
	Number string
	Label  string
}

// Banner 는 피드 위의 히어로 영역이다.
type Banner struct {
	Heading  string
	Tagline  string
	CTALabel string
	CTAHref  string
	Stats    []BannerStat
}

// SocialLink 는 사이드바의 아이콘 링크다.
type SocialLink struct {
	Label string
	Href  string
	Icon  string
}

// Feature 는 소개 페이지의 카드다.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Suggestion 은 404 페이지의 추천 카드다.
type Suggestion struct {
	Icon        string
	Title       string
	Description string
	Href        string
}

// Chrome 은 모든 페이지가 공유하는 고정 장식이다.
// 시작 시 한 번 만들고 템플릿에는 값으로 넘긴다.
type Chrome struct {
	SiteTitle   string
	Nav         []NavItem
	Banner      Banner
	Socials     []SocialLink
	Features    []Feature
	Suggestions []Suggestion
}

// DefaultChrome 은 사이트 기본 장식을 반환한다.
func DefaultChrome(siteTitle string) Chrome {
	if siteTitle == "" {
		siteTitle = "Blogs"
	}
	return Chrome{
		SiteTitle: siteTitle,
		Nav: []NavItem{
			{Href: "/", Label: "Home", Icon: "⌂"},
			{Href: "/posts/new", Label: "Write Post", Icon: "✎"},
			{Href: "/about", Label: "About", Icon: "☺"},
		},
		Banner: Banner{
			Heading:  "Share Your Stories With the World",
			Tagline:  "A simple place to write, read and discover stories from writers everywhere.",
			CTALabel: "Start Writing",
			CTAHref:  "/posts/new",
			Stats: []BannerStat{
				{Number: "1000+", Label: "Stories Shared"},
				{Number: "500+", Label: "Writers"},
				{Number: "24/7", Label: "Open Platform"},
			},
		},
		Socials: []SocialLink{
			{Label: "Twitter", Href: "#", Icon: "𝕏"},
			{Label: "LinkedIn", Href: "#", Icon: "in"},
			{Label: "GitHub", Href: "#", Icon: "⌥"},
		},
		Features: []Feature{
			{Icon: "✎", Title: "Write Freely", Description: "Share your thoughts and stories without any barriers. No signup required, just pure creativity."},
			{Icon: "☷", Title: "Community Driven", Description: "Connect with fellow writers and readers in a welcoming, inclusive environment."},
			{Icon: "♥", Title: "Passion First", Description: "We believe great content comes from passion, not algorithms or monetization."},
			{Icon: "⚡", Title: "Simple & Fast", Description: "Clean, distraction-free interface that lets you focus on what matters most - your words."},
		},
		Suggestions: []Suggestion{
			{Icon: "⌂", Title: "Go Home", Description: "Return to our homepage and explore the latest posts", Href: "/"},
			{Icon: "✎", Title: "Write a Post", Description: "Share your own story and contribute to our community", Href: "/posts/new"},
			{Icon: "☰", Title: "Browse Posts", Description: "Discover amazing content from our writers", Href: "/#posts"},
		},
	}
}
