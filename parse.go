package seedrand

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/spf13/pflag"
)

type options struct {
	options []ConfigOption
	err     error
}

// ParseCommandLine configures the draw from command line options or from
// a YAML configuration file passed with the -c flag.  Returns a slice of
// functional options that can be applied to the configuration.
func ParseCommandLine() ([]ConfigOption, error) {
	pf := createFlagSet()
	return parse(os.Args[1:], pf)
}

func parse(args []string, pf *pflag.FlagSet) ([]ConfigOption, error) {
	options := options{}
	if err := pf.ParseAll(args, parseFlag(&options)); err != nil {
		return options.options, err
	}
	if pf.NArg() > 0 {
		return options.options, fmt.Errorf("unexpected arguments: %s", strings.Join(pf.Args(), " "))
	}
	return options.options, options.err
}

func createFlagSet() *pflag.FlagSet {
	pf := pflag.NewFlagSet("seedrand", pflag.ContinueOnError)
	pf.Usage = func() {
		fmt.Printf("Usage of seedrand:\nseedrand --dist <uniform|normal|integers|choice|lognormal|poisson> <options>\n")
		fmt.Printf("\n%s", pf.FlagUsagesWrapped(10))
		fmt.Printf("\n\nExample:\n\nseedrand --seed 42 --dist integers --low 5 --high 10 --size 4,3\n")
	}

	pf.StringP("config", "c", "", "Use yaml configuration file")
	pf.Int64("seed", 0, "Seed for a reproducible draw.  Without it the seed is drawn from the system entropy source.")
	pf.String("dist", string(Uniform), "Distribution to draw from: uniform, normal, integers, choice, lognormal or poisson")
	pf.String("size", "", "Comma separated output dimensions (e.g. 3,2).  Empty draws a single value.")
	pf.Float64("mean", 0.0, "Mean of the normal distribution")
	pf.Float64("stddev", 1.0, "Standard deviation of the normal distribution")
	pf.Int64("low", 0, "Inclusive lower bound for integers, or the exclusive upper bound if --high is not given")
	pf.Int64("high", 0, "Exclusive upper bound for integers")
	pf.String("population", "", "Comma separated elements to choose from")
	pf.String("weights", "", "Comma separated weights for each element of the population")
	pf.Float64("lambda", 1.0, "Rate of the poisson distribution")
	pf.Bool("no-replace", false, "Choose without replacement")
	pf.Bool("summary", false, "Print a summary of the samples instead of the samples")
	pf.String("format", FormatText, "Output format: text or logfmt")
	pf.BoolP("verbose", "v", false, "Log debug information to stderr")

	return pf
}

func parseFlag(o *options) func(*pflag.Flag, string) error {
	return func(flag *pflag.Flag, value string) error {
		switch flag.Name {
		case "config":
			opts, err := parseFromFile(value)
			if err != nil {
				o.err = err
				return err
			}
			o.options = append(o.options, opts...)
		default:
			option, err := handleOption(flag.Name, value)
			if err != nil {
				o.err = err
				return err
			}
			if option != nil {
				o.options = append(o.options, option)
			}
		}
		return nil
	}
}

func handleOption(name string, value string) (ConfigOption, error) {
	switch name {
	case "seed":
		return Seed(value), nil
	case "dist":
		return Dist(value), nil
	case "size":
		return Size(value), nil
	case "mean":
		return Mean(value), nil
	case "stddev":
		return Stddev(value), nil
	case "low":
		return Low(value), nil
	case "high":
		return High(value), nil
	case "population":
		return Population(value), nil
	case "weights":
		return Weights(value), nil
	case "no-replace":
		return switchOption(name, value, NoReplace)
	case "summary":
		return switchOption(name, value, Summary)
	case "format":
		return Format(value), nil
	case "lambda":
		return Lambda(value), nil
	case "verbose":
		return switchOption(name, value, Verbose)
	default:
		return nil, fmt.Errorf("Unknown option: %s", name)
	}
}

// switchOption returns the option for a boolean switch, or nil when the switch is turned off
func switchOption(name string, value string, option func() ConfigOption) (ConfigOption, error) {
	on, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for %s, expected true or false: %s", name, value)
	}
	if !on {
		return nil, nil
	}
	return option(), nil
}

func parseFromFile(fpath string) ([]ConfigOption, error) {
	var options []ConfigOption
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return options, err
	}

	cfg := make(map[string]interface{})
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return options, err
	}
	for k, v := range cfg {
		var value string
		switch v := v.(type) {
		case string:
			value = v
		case int:
			value = strconv.Itoa(v)
		case float64:
			value = strconv.FormatFloat(v, 'g', -1, 64)
		case bool:
			value = strconv.FormatBool(v)
		// handles list values such as size, population and weights
		case []interface{}:
			items := make([]string, 0, len(v))
			for _, item := range v {
				items = append(items, fmt.Sprint(item))
			}
			value = strings.Join(items, ",")
		default:
			return options, fmt.Errorf("Could not process config key %s, unknown type", k)
		}
		opt, err := handleOption(k, value)
		if err != nil {
			return options, err
		}
		if opt != nil {
			options = append(options, opt)
		}
	}
	return options, nil
}
