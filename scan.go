// FILE: lixenwraith/commander/scan.go
package commander

import (
	"fmt"
	"net/url"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
)

// values returns the last value of every matched option keyed by long name.
// NoValue options map to true.
func (r *parseResult) values() map[string]any {
	values := make(map[string]any, len(r.latest))
	for long, i := range r.latest {
		arg := r.arguments[i]
		if arg.value == nil {
			values[long] = true
			continue
		}
		values[long] = arg.value
	}
	return values
}

// Scan decodes the matched options into target, a non-nil pointer to a struct
// or map. Fields are matched by long name through the configured struct tag
// ("option" unless changed with WithTagName). Fields for options that were not
// supplied are left untouched.
func (c *Commander) Scan(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	values := c.current().values()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          c.tagName,
		WeaklyTypedInput: true,
		DecodeHook:       decodeHook(),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("failed to scan options into %T: %w", target, err)
	}

	return nil
}

// decodeHook returns the composite decode hook for string option values
func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToTimeHookFunc(time.RFC3339),
		mapstructure.StringToIPHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToURLHookFunc(),
	)
}

// maxURLLength bounds URL option values accepted by Scan
const maxURLLength = 2048

var urlType = reflect.TypeFor[url.URL]()

// stringToURLHookFunc converts option values into url.URL and *url.URL fields
func stringToURLHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		raw, ok := data.(string)
		if !ok || f.Kind() != reflect.String {
			return data, nil
		}
		wantPtr := t == reflect.PointerTo(urlType)
		if t != urlType && !wantPtr {
			return data, nil
		}

		if len(raw) > maxURLLength {
			return nil, fmt.Errorf("URL option value too long: %d bytes (limit %d)", len(raw), maxURLLength)
		}
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid URL option value: %w", err)
		}
		if wantPtr {
			return u, nil
		}
		return *u, nil
	}
}
