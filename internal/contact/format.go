package contact

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/joshu-sajeev/contactrelay/internal/dto"
)

const (
	notProvided  = "Not provided"
	notSpecified = "Not specified"
	none         = "None"
)

var emailTemplate = template.Must(template.New("contact_email").
	Funcs(template.FuncMap{"striped": func(i int) bool { return i%2 == 0 }}).
	Parse(`
<h2>New Contact Form Submission</h2>
<table style="border-collapse: collapse; width: 100%; font-family: Arial, sans-serif;">
{{- range $i, $row := . }}
    {{ if striped $i }}<tr style="background-color: #f2f2f2;">{{ else }}<tr>{{ end }}
        <td style="border: 1px solid #ddd; padding: 8px; font-weight: bold;">{{ $row.Label }}:</td>
        <td style="border: 1px solid #ddd; padding: 8px;">{{ $row.Value }}</td>
    </tr>
{{- end }}
</table>
`))

type emailRow struct {
	Label string
	Value string
}

func Subject(sub *dto.ContactSubmission) string {
	return "New Contact Form Submission from " + sub.Name.String()
}

// FormatEmailHTML renders every submission field as a striped HTML table.
// Submitted values are HTML-escaped.
func FormatEmailHTML(sub *dto.ContactSubmission) (string, error) {
	rows := []emailRow{
		{"Name", sub.Name.String()},
		{"Email", sub.Email.String()},
		{"Phone", sub.Phone.String()},
		{"WhatsApp", orDefault(sub.WhatsApp, notProvided)},
		{"Industry", withCustom(sub.Industry.String(), sub.CustomIndustry)},
		{"Services Interested", FormatList(sub.Services)},
		{"Target Audience", withCustom(sub.TargetAudience.String(), sub.CustomTargetAudience)},
		{"Business Name", sub.BusinessName.String()},
		{"Your Role", sub.YourRole.String()},
		{"Social Platforms", FormatList(sub.SocialPlatforms)},
		{"How Did You Know", orDefault(sub.HowDidYouKnow, notSpecified)},
		{"Meeting Time", orDefault(sub.MeetingTime, notSpecified)},
		{"Problem Statement", sub.ProblemStatement.String()},
	}

	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatList joins list values with ", ", or returns "None" when nothing was given.
func FormatList(list dto.StringList) string {
	joined := strings.Join(list, ", ")
	if strings.TrimSpace(joined) == "" {
		return none
	}
	return joined
}

func orDefault(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

func withCustom(value, custom string) string {
	if strings.TrimSpace(custom) == "" {
		return value
	}
	return value + " (" + custom + ")"
}
