package generator

import (
	"fmt"

	oerrors "github.com/pyrepo/cli/internal/errors"
)

// Directories of the web framework generators.
const (
	FlaskDir   = "flask"
	FastAPIDir = "fastapi"
)

// DashType selects the Dash front end variant.
type DashType string

const (
	DashBasic DashType = "basic"
	DashGIS   DashType = "gis"
)

// ParseDashType validates a Dash variant name.
func ParseDashType(s string) (DashType, error) {
	switch DashType(s) {
	case DashBasic, DashGIS:
		return DashType(s), nil
	}
	return "", oerrors.NewValidationError(
		fmt.Sprintf("unknown dash app type %q", s),
		"app-type",
		"Use --basic or --gis.",
	)
}

// Dir returns the directory the variant is written to.
func (t DashType) Dir() string {
	return "dash-" + string(t)
}

// Flask writes the Flask application and merges its requirements.
func Flask(c *Context) (*Result, error) {
	e := c.emitter("flask")

	if err := e.render("flask_app.py", FlaskDir+"/flask_app.py", nil); err != nil {
		return e.res, err
	}
	if err := e.mergeRequirements("flask_requirements.txt"); err != nil {
		return e.res, err
	}
	return e.res, nil
}

// Postgres adds the Postgres integration to the Flask application.
func Postgres(c *Context) (*Result, error) {
	e := c.emitter("postgres")

	if err := e.render("flask_postgres_README.md", FlaskDir+"/flask_postgres_README.md", nil); err != nil {
		return e.res, err
	}
	if err := e.mergeRequirements("flask_postgres_requirements.txt"); err != nil {
		return e.res, err
	}
	if err := e.render("flask_postgres.py", FlaskDir+"/flask_postgres.py", nil); err != nil {
		return e.res, err
	}
	return e.res, nil
}

// RequireFlask rejects a Postgres request without Flask.
func RequireFlask(flask, postgres bool) error {
	if postgres && !flask {
		return oerrors.NewInvalidCombinationError(oerrors.MsgFlaskRequired, "Pass --flask together with --postgres.")
	}
	return nil
}

// FastAPI writes the FastAPI application, its HTML templates and merges its requirements.
func FastAPI(c *Context) (*Result, error) {
	e := c.emitter("fastapi")

	if err := e.mergeRequirements("fastapi_requirements.txt"); err != nil {
		return e.res, err
	}
	for _, name := range []string{"fastapi_app.py", "fastapi_models.py", "fastapi_database.py"} {
		if err := e.render(name, FastAPIDir+"/"+name, nil); err != nil {
			return e.res, err
		}
	}
	// Jinja markup in the HTML belongs to the generated app.
	for _, name := range []string{"fastapi_layout.html", "fastapi_home.html"} {
		if err := e.copy(name, FastAPIDir+"/"+name); err != nil {
			return e.res, err
		}
	}
	return e.res, nil
}

// Dash writes one Dash front end variant and merges its requirements.
func Dash(c *Context, t DashType) (*Result, error) {
	e := c.emitter("dash-" + string(t))

	if _, err := ParseDashType(string(t)); err != nil {
		return e.res, err
	}
	if err := e.mergeRequirements(fmt.Sprintf("dash_%s_requirements.txt", t)); err != nil {
		return e.res, err
	}
	app := fmt.Sprintf("dash_%s_template.py", t)
	if err := e.render(app, t.Dir()+"/"+app, nil); err != nil {
		return e.res, err
	}
	return e.res, nil
}
