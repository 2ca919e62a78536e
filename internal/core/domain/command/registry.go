package command

import (
	"fmt"
	"slices"
	"slowpoke/internal/core/domain"
	"slowpoke/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

// Registry holds slash and prefix commands in separate namespaces.
// It is filled once at startup and only read afterwards.
type Registry struct {
	slash  map[string]port.SlashCommand
	prefix map[string]port.Command
}

func NewRegistry() *Registry {
	return &Registry{
		slash:  make(map[string]port.SlashCommand),
		prefix: make(map[string]port.Command),
	}
}

func (r *Registry) Register(cmd port.Command) error {
	if r.slash == nil {
		r.slash = make(map[string]port.SlashCommand)
	}

	if r.prefix == nil {
		r.prefix = make(map[string]port.Command)
	}

	name := cmd.GetCommand()
	if name == "" {
		return fmt.Errorf("%w: empty command name", domain.ErrInvalidCommand)
	}

	switch cmd.Kind() {
	case domain.Slash:
		slash, ok := cmd.(port.SlashCommand)
		if !ok {
			return fmt.Errorf("%w: slash command %s has no spec", domain.ErrInvalidCommand, name)
		}

		if _, exists := r.slash[name]; exists {
			return fmt.Errorf("%w: /%s", domain.ErrDuplicateCommand, name)
		}

		r.slash[name] = slash
	case domain.Prefix:
		key := strings.ToLower(name)
		if _, exists := r.prefix[key]; exists {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateCommand, key)
		}

		r.prefix[key] = cmd
	default:
		return fmt.Errorf("%w: unknown kind %d", domain.ErrInvalidCommand, cmd.Kind())
	}

	log.Info().Str("handler", name).Stringer("kind", cmd.Kind()).Msg("adding command handler to registry")

	return nil
}

func (r *Registry) Get(kind domain.CommandKind, command string) (port.Command, error) {
	log.Debug().Str("command", command).Stringer("kind", kind).Msg("fetching command handler from registry")

	if r.slash == nil || r.prefix == nil {
		return nil, domain.ErrRegistryNotLoaded
	}

	var (
		handler port.Command
		ok      bool
	)

	switch kind {
	case domain.Slash:
		handler, ok = r.slash[command]
	case domain.Prefix:
		handler, ok = r.prefix[strings.ToLower(command)]
	}

	if !ok {
		return nil, domain.ErrCommandNotFound
	}

	return handler, nil
}

// ListCommands returns the registered names, slash commands with a leading slash, sorted.
func (r *Registry) ListCommands() []string {
	keys := make([]string, 0, len(r.slash)+len(r.prefix))

	for k := range r.slash {
		keys = append(keys, "/"+k)
	}

	for k := range r.prefix {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

func (r *Registry) SlashSpecs() []domain.CommandSpec {
	specs := make([]domain.CommandSpec, 0, len(r.slash))
	for _, cmd := range r.slash {
		specs = append(specs, cmd.Spec())
	}

	slices.SortFunc(specs, func(a, b domain.CommandSpec) int {
		return strings.Compare(a.Name, b.Name)
	})

	return specs
}
