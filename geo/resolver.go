package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"

	"github.com/eliasgr/API/consts"
	"github.com/eliasgr/API/schema"
)

const (
	logPrefix      = "geo"
	defaultTimeout = 5 * time.Second
)

var (
	ErrNoCountryFound         = fmt.Errorf("no country found")
	ErrResolverNotInitialized = fmt.Errorf("country resolver is not initialized")
)

// CountryResolver - interface for resolving free country text into the
// published identity
type CountryResolver interface {
	Lookup(text string) (schema.CountryInfo, error)
}

var defaultResolver CountryResolver

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// TableCountryResolver answers lookups from the static countries table.
// Canonical names, aliases, ISO codes and numeric ids all resolve,
// case-insensitively.
type TableCountryResolver struct {
	byKey map[string]schema.CountryInfo
}

func NewTableCountryResolver() *TableCountryResolver {
	r := &TableCountryResolver{
		byKey: make(map[string]schema.CountryInfo),
	}
	for _, record := range consts.Countries {
		info := record.Info
		r.byKey[consts.NameKey(info.Country)] = info
		r.byKey[strings.ToLower(info.Iso2)] = info
		r.byKey[strings.ToLower(info.Iso3)] = info
		r.byKey[strconv.Itoa(info.ID)] = info
		for _, alias := range record.Aliases {
			r.byKey[consts.NameKey(alias)] = info
		}
	}
	return r
}

func (r *TableCountryResolver) Lookup(text string) (schema.CountryInfo, error) {
	if info, ok := r.byKey[consts.NameKey(text)]; ok {
		return info, nil
	}
	return schema.CountryInfo{}, ErrNoCountryFound
}

// GeocodingCountryResolver asks the maps API for the country component of
// free text the table does not know, then reads the identity fields back
// from the table by ISO2 so every source agrees on ids and coordinates.
type GeocodingCountryResolver struct {
	client *maps.Client
	table  *TableCountryResolver
}

func NewGeocodingCountryResolver(client *maps.Client) *GeocodingCountryResolver {
	return &GeocodingCountryResolver{
		client: client,
		table:  NewTableCountryResolver(),
	}
}

func (g *GeocodingCountryResolver) Lookup(text string) (schema.CountryInfo, error) {
	if strings.TrimSpace(text) == "" {
		return schema.CountryInfo{}, ErrNoCountryFound
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	geos, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  text,
		Language: "en",
	})
	if nil != err {
		return schema.CountryInfo{}, err
	}

	if len(geos) == 0 {
		return schema.CountryInfo{}, ErrNoCountryFound
	}

	var name, iso2 string
	for _, component := range geos[0].AddressComponents {
		if len(component.Types) > 0 && component.Types[0] == "country" {
			name = component.LongName
			iso2 = component.ShortName
		}
	}
	if iso2 == "" {
		return schema.CountryInfo{}, ErrNoCountryFound
	}

	if info, err := g.table.Lookup(iso2); err == nil {
		return info, nil
	}

	return schema.CountryInfo{Country: name, Iso2: iso2}, nil
}

type MultipleCountryResolver struct {
	resolvers []CountryResolver
}

func NewMultipleCountryResolver(resolvers ...CountryResolver) *MultipleCountryResolver {
	return &MultipleCountryResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleCountryResolver) Lookup(text string) (schema.CountryInfo, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Lookup(text)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.CountryInfo{}, NewMultipleResolverErrors(errors)
}

// NewDefaultCountryResolver builds the resolver chain from the
// configuration. The static table always answers first; the geocoding
// fallback joins the chain when a maps API key is configured.
func NewDefaultCountryResolver() CountryResolver {
	table := NewTableCountryResolver()

	apiKey := viper.GetString("map.key")
	if "" == apiKey {
		return table
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if nil != err {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return table
	}

	return NewMultipleCountryResolver(table, NewGeocodingCountryResolver(client))
}

func SetCountryResolver(resolver CountryResolver) {
	defaultResolver = resolver
}

func ResolveCountry(text string) (schema.CountryInfo, error) {
	if defaultResolver == nil {
		return schema.CountryInfo{}, ErrResolverNotInitialized
	}

	return defaultResolver.Lookup(text)
}
