package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"creator-stack/internal/models"
	"creator-stack/shared/config"
)

type Sender struct {
	config *config.EmailConfig
}

func NewSender(cfg *config.EmailConfig) *Sender {
	return &Sender{
		config: cfg,
	}
}

const generationTemplate = `<html><body>
<h2>Content drop for niche: {{.Niche}}</h2>
<p>Generated {{.GeneratedAt.Format "Jan 2, 2006 15:04"}} — {{len .Topics}} topics</p>
{{range .Topics}}
<h3>{{.Topic}}</h3>
<h4>Script</h4><p>{{.Script}}</p>
<h4>SEO Pack</h4><pre>{{.SEO}}</pre>
<h4>Thumbnail Prompts</h4><pre>{{.Thumbnails}}</pre>
<hr>
{{end}}
</body></html>`

const rankingTemplate = `<html><body>
<h2>Ranked topics for keyword: {{.Keyword}}</h2>
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Title</th><th>Views</th><th>Duration</th><th>CTR</th><th>AVD</th><th>Total</th></tr>
{{range .Candidates}}
<tr><td>{{.Title}}</td><td>{{.Views}}</td><td>{{.Duration}}</td><td>{{.CTRScore}}</td><td>{{.AVDScore}}</td><td>{{.TotalScore}}</td></tr>
{{end}}
</table>
</body></html>`

// SendGenerationDigest mails the full output of one generation run.
func (s *Sender) SendGenerationDigest(result *models.GenerationResult) error {
	if result == nil {
		return fmt.Errorf("result cannot be nil")
	}
	if len(result.Topics) == 0 {
		return nil // Nothing to report
	}

	subject := fmt.Sprintf("Content Drop - %d Topics for %q (%s)",
		len(result.Topics), result.Niche, result.GeneratedAt.Format("Jan 2, 2006"))

	body, err := renderTemplate("generation", generationTemplate, result)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.sendViaSMTP(subject, body)
}

// SendRankingDigest mails the ranked candidate table for a keyword.
func (s *Sender) SendRankingDigest(keyword string, candidates []models.VideoCandidate) error {
	if len(candidates) == 0 {
		return nil // Nothing to report
	}

	subject := fmt.Sprintf("Topic Finder - %d Ranked Videos for %q", len(candidates), keyword)

	data := struct {
		Keyword    string
		Candidates []models.VideoCandidate
	}{keyword, candidates}

	body, err := renderTemplate("ranking", rankingTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to generate email body: %w", err)
	}

	return s.sendViaSMTP(subject, body)
}

func renderTemplate(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Sender) sendViaSMTP(subject, body string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.SMTPServer)

	to := []string{s.config.ToEmail}
	msg := []byte(fmt.Sprintf(`To: %s
From: %s
Subject: %s
MIME-Version: 1.0
Content-Type: text/html; charset=UTF-8

%s`, s.config.ToEmail, s.config.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%d", s.config.SMTPServer, s.config.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.FromEmail, to, msg)
}
