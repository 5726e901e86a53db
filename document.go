package dailywords

type Document struct {
	URL      string
	Title    string
	Body     string
	NotFound bool
}

func NewDocument(url, title, body string) Document {
	return Document{
		URL:   url,
		Title: title,
		Body:  body,
	}
}
