package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	apperrors "github.com/achilles921/lifetimegps/internal/errors"
)

//go:embed data/careers.json
var dataFS embed.FS

// Interest is one entry of the interest vocabulary.
type Interest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Career is a static catalog entry. Immutable for the duration of a scoring
// pass; the catalog is pre-loaded and never user-mutable.
type Career struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Skills           []string `json:"skills"`
	RelatedInterests []int    `json:"relatedInterests"`
	Salary           string   `json:"salary"`
	Growth           string   `json:"growth"`
	WorkEnvironment  string   `json:"workEnvironment"`
	WorkStyle        []string `json:"workStyle"`
	EducationPath    string   `json:"educationPath"`
	Category         string   `json:"category,omitempty"`
	ImagePath        string   `json:"imagePath,omitempty"`
}

type dataset struct {
	Interests []Interest `json:"interests"`
	Clusters  [][]int    `json:"clusters"`
	Careers   []Career   `json:"careers"`
}

// Catalog bundles the career list, the interest vocabulary and the interest
// clusters used for partial-credit matching.
type Catalog struct {
	Careers   []Career
	Interests []Interest

	interestByName map[string]int
	clusterOf      map[int][]int
}

// Load loads and validates the embedded catalog dataset.
func Load() (*Catalog, error) {
	raw, err := dataFS.ReadFile("data/careers.json")
	if err != nil {
		return nil, apperrors.NewInternalError("failed to read embedded catalog", err)
	}
	return parse(raw)
}

// LoadFile loads and validates a catalog dataset from an external JSON file.
// Used by tooling to check candidate catalogs before they ship.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("catalog file %s not found", path), err)
		}
		return nil, apperrors.NewInternalError("failed to read catalog file", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Catalog, error) {
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, apperrors.NewValidationError("failed to decode catalog dataset", err.Error())
	}

	c := &Catalog{
		Careers:        ds.Careers,
		Interests:      ds.Interests,
		interestByName: make(map[string]int, len(ds.Interests)),
		clusterOf:      make(map[int][]int),
	}

	for _, in := range ds.Interests {
		c.interestByName[strings.ToLower(in.Name)] = in.ID
	}
	for _, cluster := range ds.Clusters {
		for _, id := range cluster {
			c.clusterOf[id] = cluster
		}
	}

	if err := c.validate(ds.Clusters); err != nil {
		return nil, err
	}
	return c, nil
}

// InterestID resolves an interest name to its vocabulary ID,
// case-insensitively.
func (c *Catalog) InterestID(name string) (int, bool) {
	id, ok := c.interestByName[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// ClusterOf returns the cluster containing the given interest ID, or nil if
// the interest is unclustered.
func (c *Catalog) ClusterOf(id int) []int {
	return c.clusterOf[id]
}

// CareerByTitle looks up a career by exact title.
func (c *Catalog) CareerByTitle(title string) (Career, bool) {
	for _, career := range c.Careers {
		if career.Title == title {
			return career, true
		}
	}
	return Career{}, false
}

// validate checks referential integrity. A failure here is a data bug in the
// shipped dataset, not a recoverable runtime condition.
func (c *Catalog) validate(clusters [][]int) error {
	interestIDs := make(map[int]bool, len(c.Interests))
	for _, in := range c.Interests {
		if in.Name == "" {
			return apperrors.NewDataIntegrityError(fmt.Sprintf("interest %d has an empty name", in.ID), nil)
		}
		if interestIDs[in.ID] {
			return apperrors.NewDataIntegrityError(fmt.Sprintf("duplicate interest id %d", in.ID), nil)
		}
		interestIDs[in.ID] = true
	}

	careerIDs := make(map[int]bool, len(c.Careers))
	for _, career := range c.Careers {
		if career.Title == "" {
			return apperrors.NewDataIntegrityError(fmt.Sprintf("career %d has an empty title", career.ID), nil)
		}
		if careerIDs[career.ID] {
			return apperrors.NewDataIntegrityError(fmt.Sprintf("duplicate career id %d (%s)", career.ID, career.Title), nil)
		}
		careerIDs[career.ID] = true

		for _, id := range career.RelatedInterests {
			if !interestIDs[id] {
				return apperrors.NewDataIntegrityError(
					fmt.Sprintf("career %s references unknown interest id %d", career.Title, id), nil)
			}
		}
	}

	for _, cluster := range clusters {
		for _, id := range cluster {
			if !interestIDs[id] {
				return apperrors.NewDataIntegrityError(fmt.Sprintf("cluster references unknown interest id %d", id), nil)
			}
		}
	}

	return nil
}
