package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/cmkdiscovery/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// Params mirrors the argument block of a discovery task
type Params struct {
	ServerURL        string `yaml:"server_url"`
	Site             string `yaml:"site"`
	AutomationUser   string `yaml:"automation_user"`
	AutomationSecret string `yaml:"automation_secret"`
	HostName         string `yaml:"host_name"`
	State            string `yaml:"state"`
}

// LoadParamsFromFile loads task parameters from a YAML file
func LoadParamsFromFile(path string) (*Params, error) {
	if path == "" {
		return nil, goerr.New("params file path is required", goerr.T(model.ErrTagConfiguration))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "params file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagConfiguration))
		}
		return nil, goerr.Wrap(err, "failed to read params file",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfiguration))
	}

	var params Params
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML params file",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfiguration))
	}

	return &params, nil
}

// ApplyTo fills settings that were not given on the command line
func (p *Params) ApplyTo(ck *Checkmk, d *Discovery) {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}

	fill(&ck.ServerURL, p.ServerURL)
	fill(&ck.Site, p.Site)
	fill(&ck.User, p.AutomationUser)
	fill(&ck.Secret, p.AutomationSecret)
	fill(&d.HostName, p.HostName)
	fill(&d.State, p.State)
}
