package query

import(
	"errors"
	"fmt"
	"sort"

	"github.com/skypies/routeart/routedb"
)

var ErrUnknownQuestion = errors.New("unknown question")

type Func func(*routedb.Dataset) (Result, error)

// A simple registry of all known questions.
type Entry struct {
	Func
	Name, Title string
	Limit       int // The top-N cut this question reports on
}

var registry = map[string]Entry{}

func Register(name string, f Func, limit int, title string) {
	registry[name] = Entry{
		Func: f,
		Name: name,
		Title: title,
		Limit: limit,
	}
}

func Lookup(name string) (Entry, error) {
	entry,exists := registry[name]
	if !exists {
		return Entry{}, fmt.Errorf("%w '%s' (known: %v)", ErrUnknownQuestion, name, Names())
	}
	return entry, nil
}

func Names() []string {
	keys := []string{}
	for k,_ := range registry { keys = append(keys, k) }
	sort.Strings(keys)
	return keys
}

func List() []Entry {
	out := []Entry{}
	for _,k := range Names() {
		out = append(out, registry[k])
	}
	return out
}

// Run looks up the named question and runs it over the dataset.
func Run(name string, ds *routedb.Dataset) (Result, error) {
	entry,err := Lookup(name)
	if err != nil { return Result{}, err }

	res,err := entry.Func(ds)
	if err != nil { return Result{}, fmt.Errorf("%s: %w", name, err) }
	res.Question = name
	return res, nil
}
