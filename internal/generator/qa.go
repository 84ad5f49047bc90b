package generator

import (
	"fmt"
	"strings"

	"gameforge/internal/model"
)

// QA check names.
const (
	CheckRequiredFiles  = "required_files"
	CheckTokensResolved = "tokens_resolved"
	CheckScriptLinked   = "html_links_main_script"
	CheckStyleLinked    = "html_links_stylesheet"
	CheckConfigLinked   = "html_links_config"
)

func runQA(t model.Template, files map[string]string, unresolved []string) model.QA {
	mainFile := t.Code.MainFileName()
	required := []string{model.FileHTML, mainFile, model.FileCSS, model.FileConfig}
	if len(t.Structure.Dependencies) > 0 {
		required = append(required, model.FilePackageJSON)
	}

	var missing []string
	for _, name := range required {
		if strings.TrimSpace(files[name]) == "" {
			missing = append(missing, name)
		}
	}

	html := files[model.FileHTML]
	checks := []model.QACheck{
		check(CheckRequiredFiles, len(missing) == 0, "missing or empty: "+strings.Join(missing, ", ")),
		check(CheckTokensResolved, len(unresolved) == 0, "unresolved: "+strings.Join(unresolved, ", ")),
		check(CheckScriptLinked, references(html, "src", mainFile), fmt.Sprintf("%s does not load %s", model.FileHTML, mainFile)),
		check(CheckStyleLinked, references(html, "href", model.FileCSS), fmt.Sprintf("%s does not link %s", model.FileHTML, model.FileCSS)),
		check(CheckConfigLinked, references(html, "src", model.FileConfig), fmt.Sprintf("%s does not load %s", model.FileHTML, model.FileConfig)),
	}

	passed := true
	for _, c := range checks {
		passed = passed && c.Passed
	}
	return model.QA{Passed: passed, Checks: checks}
}

func check(name string, ok bool, failure string) model.QACheck {
	c := model.QACheck{Name: name, Passed: ok}
	if !ok {
		c.Detail = failure
	}
	return c
}

func references(html, attr, file string) bool {
	return strings.Contains(html, attr+`="`+file+`"`) || strings.Contains(html, attr+`='`+file+`'`)
}
