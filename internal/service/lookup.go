package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/lolclient/internal/api/lol"
)

var ErrUnknownLookup = errors.New("unknown lookup")

// Lookup is one API method exposed under a short name.
type Lookup struct {
	Name        string
	Description string
	Args        []string
	// Variadic lets the last argument take one or more values.
	Variadic bool

	call func(ctx context.Context, args []string) (json.RawMessage, error)
}

func (l Lookup) Usage() string {
	var sb strings.Builder
	sb.WriteString("/" + l.Name)
	for i, arg := range l.Args {
		if l.Variadic && i == len(l.Args)-1 {
			sb.WriteString(fmt.Sprintf(" <%s...>", arg))
			continue
		}
		sb.WriteString(fmt.Sprintf(" <%s>", arg))
	}
	return sb.String()
}

func (l Lookup) accepts(n int) bool {
	if l.Variadic {
		return n >= len(l.Args)
	}
	return n == len(l.Args)
}

// UsageError reports a wrong argument count, or an argument that cannot be
// used as a single path segment.
type UsageError struct {
	Lookup  Lookup
	Got     int
	Invalid string
}

func (e *UsageError) Error() string {
	if e.Invalid != "" {
		return fmt.Sprintf("%s: invalid argument %q. Usage: %s", e.Lookup.Name, e.Invalid, e.Lookup.Usage())
	}
	want := fmt.Sprintf("%d", len(e.Lookup.Args))
	if e.Lookup.Variadic {
		want = "at least " + want
	}
	return fmt.Sprintf("%s takes %s argument(s), got %d. Usage: %s", e.Lookup.Name, want, e.Got, e.Lookup.Usage())
}

// Arguments are inserted into the request path verbatim, so anything that
// would leave the path segment is refused before the API is called.
const reservedArgChars = "/\\?#%"

func validArg(arg string) bool {
	if arg == "." || arg == ".." {
		return false
	}
	return !strings.ContainsAny(arg, reservedArgChars) && strings.IndexFunc(arg, unicode.IsSpace) < 0
}

type LookupService struct {
	api     *lol.API
	lookups []Lookup
	byName  map[string]int
}

func NewLookupService(api *lol.API) *LookupService {
	s := &LookupService{api: api}
	s.lookups = s.buildLookups()
	s.byName = make(map[string]int, len(s.lookups))
	for i, l := range s.lookups {
		s.byName[l.Name] = i
	}
	return s
}

func (s *LookupService) buildLookups() []Lookup {
	a := s.api
	return []Lookup{
		{Name: "mastery", Description: "All champion masteries of a summoner", Args: []string{"summonerId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.ChampionMastery.All(ctx, args[0])
			}},
		{Name: "masterychamp", Description: "Mastery of one champion for a summoner", Args: []string{"summonerId", "championId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.ChampionMastery.ByChampion(ctx, args[0], args[1])
			}},
		{Name: "score", Description: "Total champion mastery score", Args: []string{"summonerId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.ChampionMastery.Score(ctx, args[0])
			}},
		{Name: "champions", Description: "All champions",
			call: func(ctx context.Context, _ []string) (json.RawMessage, error) {
				return a.Champion.All(ctx)
			}},
		{Name: "champion", Description: "One champion by ID", Args: []string{"championId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.Champion.ByID(ctx, args[0])
			}},
		{Name: "leagues", Description: "Leagues by summoner (v2.5)", Args: []string{"region", "summonerIds"}, Variadic: true,
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.League.BySummoner(ctx, args[0], args[1:]...)
			}},
		{Name: "entries", Description: "League entries by summoner (v2.5)", Args: []string{"region", "summonerIds"}, Variadic: true,
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.League.EntriesBySummoner(ctx, args[0], args[1:]...)
			}},
		{Name: "challenger", Description: "Challenger tier leagues (v2.5)", Args: []string{"region"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.League.Challenger(ctx, args[0])
			}},
		{Name: "master", Description: "Master tier leagues (v2.5)", Args: []string{"region"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.League.Master(ctx, args[0])
			}},
		{Name: "challengerq", Description: "Challenger league for a queue", Args: []string{"queue"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.LeagueV3.ChallengerByQueue(ctx, NormalizeQueue(args[0]))
			}},
		{Name: "leaguesv3", Description: "Leagues in all queues for a summoner", Args: []string{"summonerId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.LeagueV3.BySummoner(ctx, args[0])
			}},
		{Name: "masterq", Description: "Master league for a queue", Args: []string{"queue"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.LeagueV3.MasterByQueue(ctx, NormalizeQueue(args[0]))
			}},
		{Name: "positions", Description: "League positions for a summoner", Args: []string{"summonerId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.LeagueV3.PositionsBySummoner(ctx, args[0])
			}},
		{Name: "status", Description: "Shard status",
			call: func(ctx context.Context, _ []string) (json.RawMessage, error) {
				return a.Status.ShardData(ctx)
			}},
		{Name: "masteries", Description: "Mastery pages of a summoner", Args: []string{"summonerId"},
			call: func(ctx context.Context, args []string) (json.RawMessage, error) {
				return a.Masteries.BySummoner(ctx, args[0])
			}},
	}
}

func (s *LookupService) Lookups() []Lookup {
	out := make([]Lookup, len(s.lookups))
	copy(out, s.lookups)
	return out
}

func (s *LookupService) Find(name string) (Lookup, bool) {
	i, ok := s.byName[strings.ToLower(name)]
	if !ok {
		return Lookup{}, false
	}
	return s.lookups[i], true
}

// Run calls the API method registered under name.
func (s *LookupService) Run(ctx context.Context, name string, args []string) (json.RawMessage, error) {
	l, ok := s.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLookup, name)
	}
	if !l.accepts(len(args)) {
		return nil, &UsageError{Lookup: l, Got: len(args)}
	}
	for _, arg := range args {
		if !validArg(arg) {
			return nil, &UsageError{Lookup: l, Got: len(args), Invalid: arg}
		}
	}
	return l.call(ctx, args)
}

// Report runs a lookup and renders it as Telegram Markdown: the escaped
// command line followed by the response in a code block.
func (s *LookupService) Report(ctx context.Context, name string, args []string) (string, error) {
	raw, err := s.Run(ctx, name, args)
	if err != nil {
		return "", fmt.Errorf("error running %s: %w", name, err)
	}

	var sb strings.Builder
	sb.WriteString(EscapeMarkdown(strings.Join(append([]string{name}, args...), " ")))
	sb.WriteString("\n")
	sb.WriteString("```\n")
	sb.WriteString(Pretty(raw))
	sb.WriteString("\n```")
	return sb.String(), nil
}

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// EscapeMarkdown escapes the characters that open an entity in Telegram's
// legacy Markdown.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Suggest returns lookup names close to name, best match first.
func (s *LookupService) Suggest(name string) []string {
	names := make([]string, len(s.lookups))
	for i, l := range s.lookups {
		names[i] = l.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(name, names)
	sort.Sort(ranks)

	out := make([]string, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, r.Target)
	}
	return out
}

// Pretty indents raw JSON. Invalid input is returned unchanged.
func Pretty(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// NormalizeQueue maps loose input such as "solo" or "flex_tt" onto a known
// queue name. Input that matches no queue, or several equally well, is
// returned unchanged.
func NormalizeQueue(queue string) string {
	if strings.TrimSpace(queue) == "" {
		return queue
	}
	for _, q := range lol.Queues {
		if strings.EqualFold(q, queue) {
			return q
		}
	}

	ranks := fuzzy.RankFindNormalizedFold(queue, lol.Queues)
	if len(ranks) == 0 {
		return queue
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return queue
	}
	return ranks[0].Target
}
