package notification

import (
	"bytes"
	"html/template"
)

var statusUpdateTmpl = template.Must(template.New("loan_status_update").Parse(`
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your loan application <strong>{{.ApplicationID}}</strong> moved from
<strong>{{.PreviousStatus}}</strong> to <strong>{{.NewStatus}}</strong>.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>— The LendHub team</p>
</body></html>`))

var documentRequestTmpl = template.Must(template.New("document_request").Parse(`
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>We need one more document to keep your application moving:
<strong>{{.DocumentType}}</strong>.</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p>Please upload it from your dashboard.</p>
<p>— The LendHub team</p>
</body></html>`))

var loanApprovalTmpl = template.Must(template.New("loan_approval").Parse(`
<html><body>
<p>Congratulations {{.RecipientName}}!</p>
<p>Your loan application <strong>{{.ApplicationID}}</strong> has been approved.</p>
<p>An offer letter will follow shortly.</p>
<p>— The LendHub team</p>
</body></html>`))

var offerSentTmpl = template.Must(template.New("offer_letter_sent").Parse(`
<html><body>
<p>Hi {{.RecipientName}},</p>
<p>Your loan offer <strong>{{.OfferNumber}}</strong> is ready for signature.
Please check your inbox for the signing request.</p>
<p>— The LendHub team</p>
</body></html>`))

var templatesByType = map[Type]*template.Template{
	TypeLoanStatusUpdate: statusUpdateTmpl,
	TypeDocumentRequest:  documentRequestTmpl,
	TypeLoanApproval:     loanApprovalTmpl,
	TypeOfferLetterSent:  offerSentTmpl,
}

var subjectsByType = map[Type]string{
	TypeLoanStatusUpdate: "Your loan application status changed",
	TypeDocumentRequest:  "Action needed: document request",
	TypeLoanApproval:     "Your loan application was approved",
	TypeOfferLetterSent:  "Your loan offer is ready to sign",
}

func render(t Type, data any) (subject, html string, err error) {
	tmpl := templatesByType[t]
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjectsByType[t], buf.String(), nil
}
