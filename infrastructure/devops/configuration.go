package devops

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"bizdesk.app/bizdesk/utils"
	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

type DBEntry struct {
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// DSN builds a go-sql-driver/mysql data source name.
func (e DBEntry) DSN() string {
	host := e.Host
	if e.Port != "" && !strings.Contains(host, ":") {
		host += ":" + e.Port
	}
	database := e.Database
	if database == "" {
		database = e.Name
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		e.Username, e.Password, host, database)
}

func ParseDBEntries(data []byte) ([]DBEntry, error) {
	var parsed []DBEntry
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	return parsed, nil
}

type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Resolver reads the database list once from an SSM parameter.
type Resolver struct {
	client    ParameterStore
	paramName string

	once    sync.Once
	dbList  []DBEntry
	loadErr error
}

func NewResolver(ctx context.Context, paramName, region string) (*Resolver, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return NewResolverWithClient(ssm.NewFromConfig(cfg), paramName), nil
}

func NewResolverWithClient(client ParameterStore, paramName string) *Resolver {
	return &Resolver{client: client, paramName: paramName}
}

func (r *Resolver) LoadDBConfig(ctx context.Context) ([]DBEntry, error) {
	r.once.Do(func() {
		out, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(r.paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			r.loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}
		if out.Parameter == nil || out.Parameter.Value == nil {
			r.loadErr = fmt.Errorf("parameter %s has no value", r.paramName)
			return
		}

		r.dbList, r.loadErr = ParseDBEntries([]byte(*out.Parameter.Value))
	})

	return r.dbList, r.loadErr
}

// DSN returns the data source name of the entry called name.
func (r *Resolver) DSN(ctx context.Context, name string) (string, error) {
	entries, err := r.LoadDBConfig(ctx)
	if err != nil {
		return "", err
	}
	entry := utils.Find(entries, func(e DBEntry) bool {
		return e.Name == name
	})
	if entry == nil {
		return "", fmt.Errorf("database %q not found in parameter %s", name, r.paramName)
	}
	return entry.DSN(), nil
}
