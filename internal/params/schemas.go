package params

// Shared parameters.
var (
	Repo = Param{
		Name:     "repo",
		Short:    "r",
		Kind:     KindString,
		Required: true,
		Prompt:   "Configure template repository...\nRepository Name",
		Usage:    "The name of the current project",
	}
	Description = Param{
		Name:     "description",
		Short:    "d",
		Kind:     KindString,
		Required: true,
		Prompt:   "Repository Description",
		Usage:    "Description of the repository (alias --describe)",
	}
	Maintainer = Param{
		Name:     "maintain",
		Short:    "m",
		Kind:     KindString,
		Required: true,
		Prompt:   "Maintainer",
		Usage:    "The name of the repository maintainer",
	}

	Docker = Param{
		Name:   "docker",
		Kind:   KindBool,
		Prompt: "Docker? Deny to use virtual environment",
		Usage:  "Build a docker image instead of a local environment",
	}
	Poetry = Param{
		Name:   "poetry",
		Kind:   KindBool,
		Prompt: "Poetry? Deny to use virtualenv",
		Usage:  "Use poetry instead of virtualenv for the environment",
	}
	CircleCI = Param{
		Name:   "circleci",
		Kind:   KindBool,
		Prompt: "CircleCI? Deny to setup GH actions",
		Usage:  "Use CircleCI instead of GitHub Actions",
	}
	ECR = Param{
		Name:   "ecr",
		Kind:   KindBool,
		Prompt: "Amazon ECR",
		Usage:  "Push the image to Amazon ECR",
	}
	Flask = Param{
		Name:   "flask",
		Kind:   KindBool,
		Prompt: "Flask Application",
		Usage:  "Build a Flask application",
	}
	Postgres = Param{
		Name:   "postgres",
		Kind:   KindBool,
		Prompt: "Include Postgres with Flask",
		Usage:  "Add a Postgres database to the Flask application",
	}
	FastAPI = Param{
		Name:   "fastapi",
		Kind:   KindBool,
		Prompt: "Include FastAPI web framework",
		Usage:  "Build a FastAPI application",
	}
	DashBasic = Param{
		Name:   "dash-basic",
		Kind:   KindBool,
		Prompt: "Do you want a basic Dash Front End?",
		Usage:  "Build a basic Dash front end",
	}
	DashGIS = Param{
		Name:   "dash-gis",
		Kind:   KindBool,
		Prompt: "Do you want a GIS specific Dash Front End?",
		Usage:  "Build a GIS Dash front end",
	}
	Basic = Param{
		Name:  "basic",
		Kind:  KindBool,
		Usage: "Create the general Dash front end (default)",
	}
	GIS = Param{
		Name:  "gis",
		Kind:  KindBool,
		Usage: "Create the GIS specific Dash front end",
	}
)

// whenPoetry makes a string parameter required only together with --poetry.
func whenPoetry(p Param) Param {
	p.Required = false
	p.RequiredWhen = Poetry.Name
	return p
}

func cciFlags() []Param {
	docker := Docker
	docker.Usage = "Build and test a docker image in the pipeline"
	return []Param{docker, ECR}
}

// Command schemas.
var (
	CCISchema            = Schema{Command: "easy cci", Params: cciFlags()}
	GitHubActionsSchema  = Schema{Command: "easy github-actions", Params: []Param{Docker}}
	LambdaWorkflowSchema = Schema{Command: "easy lambda-workflow"}
	DockerSchema         = Schema{Command: "easy docker"}
	VirtualenvSchema     = Schema{Command: "easy virtualenv"}
	PoetrySchema         = Schema{Command: "easy poetry", Params: []Param{Repo, Maintainer, Description}}
	FlaskSchema          = Schema{Command: "easy flask", Params: []Param{Repo, Description, Maintainer, Docker, Poetry}}
	PostgresSchema       = Schema{Command: "easy postgres", Params: []Param{Repo, Description, Maintainer, Docker, Poetry, Flask}}
	FastAPISchema        = Schema{Command: "easy fastapi", Params: []Param{Repo, Description, Maintainer, Docker, Poetry}}
	DashSchema           = Schema{Command: "easy dash", Params: []Param{Repo, Description, Maintainer, Docker, Poetry, Basic, GIS}}
	AutoMLSchema         = Schema{Command: "easy automl", Params: []Param{Docker, Poetry, whenPoetry(Repo), whenPoetry(Description), whenPoetry(Maintainer)}}
	FullMLSchema         = Schema{Command: "easy fullml", Params: []Param{Docker, Poetry, whenPoetry(Repo), whenPoetry(Description), whenPoetry(Maintainer)}}

	ConfigSchema = Schema{Command: "config", Params: []Param{
		Repo, Description, Maintainer,
		Docker, Poetry, CircleCI, ECR, Flask, Postgres, FastAPI, DashBasic, DashGIS,
	}}
	EasySetupSchema = Schema{Command: "easy-setup", Params: []Param{Repo, Description}}
)
