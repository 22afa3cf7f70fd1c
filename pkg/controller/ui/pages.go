package ui

import (
	"github.com/migration-world/tabmigrate/pkg/domain/model"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Label string
	Href  string
	Key   string
}

var navItems = []navItem{
	{Label: "Home", Href: "/", Key: "home"},
	{Label: "Export Content", Href: "/export", Key: "export"},
	{Label: "Import Users & Groups", Href: "/import", Key: "import"},
	{Label: "Convert Roster", Href: "/convert", Key: "convert"},
	{Label: "Download Workbooks", Href: "/download", Key: "download"},
	{Label: "Upload Workbooks", Href: "/upload", Key: "upload"},
}

func appPage(title, active string, body ...Node) Node {
	nav := make([]Node, 0, len(navItems))
	for _, item := range navItems {
		className := "nav-link"
		if item.Key == active {
			className += " active"
		}
		nav = append(nav, A(Href(item.Href), Class(className), Text(item.Label)))
	}

	return HTML(
		Lang("en"),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			TitleEl(Text(title+" | tabmigrate")),
			Link(Rel("icon"), Href("data:,")),
			StyleEl(Raw(appStylesheet)),
		),
		Body(
			Main(Class("shell"),
				Aside(Class("sidebar"),
					Div(Class("brand"),
						Strong(Text("tabmigrate")),
						P(Class("muted"), Text("Tableau export/import tool")),
					),
					Nav(Class("nav"), Group(nav)),
				),
				Section(Class("main"),
					H1(Class("page-title"), Text(title)),
					Div(Class("content"), Group(body)),
				),
			),
		),
	)
}

func errorPage(title, message string) Node {
	return appPage(title, "",
		Div(Class("card error"),
			H2(Text("Something went wrong")),
			P(Text(message)),
			P(A(Href("/"), Text("Back to start"))),
		),
	)
}

func warningPage(title, active, message string) Node {
	return appPage(title, active,
		Div(Class("card warning"),
			P(Text(message)),
		),
	)
}

// connectionFields is the shared fieldset for modes that talk to the server.
// The operator fills the credential pair matching the selected method.
func connectionFields(d ConnectionDefaults) Node {
	return FieldSet(Class("connection"),
		Legend(Text("Tableau Connection")),
		labeledInput("Server/Cloud URL", "server_url", "text", d.ServerURL),
		labeledInput("Site Content URL (empty for Default site)", "site_url", "text", d.SiteURL),
		Label(Class("field"),
			Span(Text("Authentication Method")),
			Select(Name("auth_method"),
				Option(Value("pat"), Selected(), Text("PAT (Personal Access Token)")),
				Option(Value("password"), Text("Username & Password")),
			),
		),
		labeledInput("PAT Name", "token_name", "text", d.TokenName),
		labeledInput("PAT Secret", "token_value", "password", ""),
		labeledInput("Username", "username", "text", ""),
		labeledInput("Password", "password", "password", ""),
	)
}

// hiddenCredentials carries the submitted connection fields into a follow-up
// form so the operator does not retype them between steps
func hiddenCredentials(creds *model.Credentials) Node {
	return Group([]Node{
		Input(Type("hidden"), Name("server_url"), Value(creds.ServerURL)),
		Input(Type("hidden"), Name("site_url"), Value(creds.SiteURL.String())),
		Input(Type("hidden"), Name("auth_method"), Value(string(creds.Method))),
		Input(Type("hidden"), Name("token_name"), Value(creds.TokenName)),
		Input(Type("hidden"), Name("token_value"), Value(creds.TokenValue)),
		Input(Type("hidden"), Name("username"), Value(creds.Username)),
		Input(Type("hidden"), Name("password"), Value(creds.Password)),
	})
}

func labeledInput(label, name, inputType, value string) Node {
	return Label(Class("field"),
		Span(Text(label)),
		Input(Type(inputType), Name(name), Value(value)),
	)
}

func submitButton(label string) Node {
	return Div(Class("form-actions"),
		Button(Type("submit"), Class("btn primary"), Text(label)),
	)
}

// reportCard renders an import report with its per-row warnings
func reportCard(title string, report *model.ImportReport) Node {
	warnings := make([]Node, 0, len(report.Warnings))
	for _, warning := range report.Warnings {
		warnings = append(warnings, Li(Text(warning)))
	}

	nodes := []Node{
		H2(Text(title)),
		P(Class("summary"), Text(report.Summary())),
	}
	if len(warnings) > 0 {
		nodes = append(nodes,
			H3(Text("Warnings")),
			Ul(Class("warnings"), Group(warnings)),
		)
	}
	return Div(Class("card"), Group(nodes))
}

const appStylesheet = `
:root { color-scheme: light; }
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f4f6f8; color: #1f2933; }
.shell { display: flex; min-height: 100vh; }
.sidebar { width: 240px; background: #243b53; color: #f0f4f8; padding: 1.5rem 1rem; }
.brand p.muted { color: #9fb3c8; font-size: 0.8rem; margin: 0.25rem 0 0; }
.nav { display: flex; flex-direction: column; margin-top: 1.5rem; gap: 0.25rem; }
.nav-link { color: #d9e2ec; text-decoration: none; padding: 0.5rem 0.75rem; border-radius: 6px; }
.nav-link:hover { background: #334e68; }
.nav-link.active { background: #486581; color: #fff; }
.main { flex: 1; padding: 2rem 2.5rem; }
.page-title { margin-top: 0; }
.card { background: #fff; border: 1px solid #d9e2ec; border-radius: 8px; padding: 1.25rem 1.5rem; margin-bottom: 1.25rem; max-width: 640px; }
.card.error { border-color: #ab091e; }
.card.warning { border-color: #cb6e17; }
.card.grid { display: grid; grid-template-columns: 1fr 1fr; gap: 1rem; max-width: 900px; }
fieldset.connection { border: 1px solid #d9e2ec; border-radius: 6px; margin-bottom: 1rem; }
label.field { display: block; margin: 0.6rem 0; }
label.field span { display: block; font-size: 0.85rem; margin-bottom: 0.2rem; color: #486581; }
label.field input, label.field select { width: 100%; padding: 0.45rem 0.6rem; border: 1px solid #bcccdc; border-radius: 4px; }
.form-actions { margin-top: 1rem; }
.btn { padding: 0.5rem 1rem; border-radius: 6px; border: 1px solid #bcccdc; background: #fff; cursor: pointer; }
.btn.primary { background: #2680c2; border-color: #2680c2; color: #fff; }
.btn.primary:hover { background: #186faf; }
ul.warnings { color: #8d2b0b; }
p.summary { font-weight: 600; }
`
