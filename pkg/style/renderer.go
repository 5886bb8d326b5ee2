package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/rigup/pkg/bootstrap"
	"github.com/arthur-debert/rigup/pkg/doctor"
	"github.com/arthur-debert/rigup/pkg/reconcile"
)

// OutcomeStyle returns the pterm style used for a reconcile outcome badge
func OutcomeStyle(outcome reconcile.Outcome) *pterm.Style {
	switch outcome {
	case reconcile.OutcomeWritten, reconcile.OutcomeBlockAppended, reconcile.OutcomeBlockRefreshed:
		return pterm.NewStyle(pterm.FgGreen)
	case reconcile.OutcomeFailed:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderRunResult renders the outcome of a full bootstrap run.
func RenderRunResult(res *bootstrap.Result) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("rigup bootstrap") + "\n\n")
	b.WriteString(fmt.Sprintf("%s manager: %s\n", InfoIndicator, Bold(string(res.Manager))))

	b.WriteString("\n" + TitleStyle.Render("Packages") + "\n")
	if len(res.Install.Installed) > 0 {
		b.WriteString(fmt.Sprintf("%s installed: %s\n",
			SuccessIndicator, strings.Join(res.Install.Installed, ", ")))
	}
	if len(res.Install.AlreadyPresent) > 0 {
		b.WriteString(fmt.Sprintf("%s already present: %s\n",
			PendingIndicator, MutedStyle.Render(strings.Join(res.Install.AlreadyPresent, ", "))))
	}
	if len(res.Install.Unsupported) > 0 {
		b.WriteString(fmt.Sprintf("%s unsupported on %s: %s\n",
			WarningIndicator, res.Manager, strings.Join(res.Install.Unsupported, ", ")))
	}
	if res.Install.Failed() {
		b.WriteString(fmt.Sprintf("%s install failed: %v\n", ErrorIndicator, res.Install.Err))
	}
	if len(res.Install.Installed) == 0 && !res.Install.Failed() {
		b.WriteString(MutedStyle.Render("nothing to install") + "\n")
	}

	if len(res.Clones) > 0 {
		b.WriteString("\n" + TitleStyle.Render("Clones") + "\n")
		for _, clone := range res.Clones {
			switch clone.Outcome {
			case bootstrap.CloneDone:
				b.WriteString(fmt.Sprintf("%s %s %s\n",
					SuccessIndicator, clone.Name, PathStyle.Render(clone.Dest)))
			case bootstrap.CloneSkipped:
				b.WriteString(fmt.Sprintf("%s %s already present\n", PendingIndicator, clone.Name))
			case bootstrap.CloneFailed:
				b.WriteString(fmt.Sprintf("%s %s failed: %v\n", WarningIndicator, clone.Name, clone.Err))
			}
		}
	}

	b.WriteString("\n" + TitleStyle.Render("Files") + "\n")
	for _, file := range res.Files {
		b.WriteString(renderFileResult(file))
	}

	if res.DryRun {
		b.WriteString("\n" + WarningStyle.Render("DRY RUN MODE - No changes were made") + "\n")
	}

	if res.Failed() {
		b.WriteString("\n" + ErrorStyle.Render("bootstrap finished with failures") + "\n")
	} else {
		b.WriteString("\n" + SuccessStyle.Render("bootstrap complete") + "\n")
	}

	return b.String()
}

func renderFileResult(file bootstrap.FileResult) string {
	name := file.File.Name
	path := PathStyle.Render(file.File.Path)

	if file.DisabledByToggle {
		return fmt.Sprintf("%s %s kept, overwrite disabled %s\n", PendingIndicator, name, path)
	}

	switch file.Outcome {
	case reconcile.OutcomeSkipped:
		return fmt.Sprintf("%s %s already current %s\n", PendingIndicator, name, path)
	case reconcile.OutcomeWritten:
		suffix := ""
		if file.BackupCreated {
			suffix = MutedStyle.Render(" (original backed up)")
		}
		return fmt.Sprintf("%s %s written %s%s\n", SuccessIndicator, name, path, suffix)
	case reconcile.OutcomeBlockAppended:
		return fmt.Sprintf("%s %s block added %s\n", SuccessIndicator, name, path)
	case reconcile.OutcomeBlockRefreshed:
		return fmt.Sprintf("%s %s block refreshed %s\n", SuccessIndicator, name, path)
	default:
		return fmt.Sprintf("%s %s failed: %v\n", ErrorIndicator, name, file.Err)
	}
}

// RenderDoctorReport renders the healthcheck.
func RenderDoctorReport(report doctor.Report) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("rigup doctor") + "\n\n")

	for _, tool := range report.Tools {
		switch {
		case tool.Found && tool.ViaAlternative != "":
			b.WriteString(fmt.Sprintf("%s %s via %s %s\n",
				SuccessIndicator, tool.Name, tool.ViaAlternative, PathStyle.Render(tool.Path)))
		case tool.Found:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				SuccessIndicator, tool.Name, PathStyle.Render(tool.Path)))
		case tool.Required:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				ErrorIndicator, tool.Name, ErrorStyle.Render("missing (required)")))
		default:
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				WarningIndicator, tool.Name, WarningStyle.Render("missing")))
		}
		for _, hint := range tool.Hints {
			b.WriteString(Indent(MutedStyle.Render(hint), 2) + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\n%d found, %d missing", report.Found, report.Missing))
	if report.MissingRequired > 0 {
		b.WriteString(ErrorStyle.Render(fmt.Sprintf(" (%d required)", report.MissingRequired)))
	}
	b.WriteString("\n")

	return b.String()
}

// RenderError renders a fatal error for the CLI.
func RenderError(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("Error: %v", err))
}
