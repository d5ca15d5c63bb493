package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/kylycht/hoststats/model"
	"github.com/kylycht/hoststats/service"
	"github.com/kylycht/hoststats/storage"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	SectionSettings  = "settings"
	SectionStatus    = "status"
	SectionTotals    = "totals"
	SectionSnapshots = "snapshots"
)

// SettingsView is the average host pricing
// rendered in the display currency
type SettingsView struct {
	Settings      model.HostSettings `json:"settings"`                 // raw hastings values
	StoragePrice  string             `json:"storage_price,omitempty"`  // per TB per month
	UploadPrice   string             `json:"upload_price,omitempty"`   // per TB
	DownloadPrice string             `json:"download_price,omitempty"` // per TB
	ContractPrice string             `json:"contract_price,omitempty"`
}

// View is everything the dashboard renders
type View struct {
	Currency       string                  `json:"currency"`
	ExchangeRateSC model.ExchangeRateTable `json:"exchange_rate_sc"`
	ExchangeRateSF model.ExchangeRateTable `json:"exchange_rate_sf"`
	Settings       *SettingsView           `json:"settings,omitempty"`
	Status         *model.StatusResponse   `json:"status,omitempty"`
	Totals         *model.TotalsResponse   `json:"totals,omitempty"`
	Snapshots      []model.Snapshot        `json:"snapshots"`
	Errors         map[string]string       `json:"errors,omitempty"` // failed sections
}

// CurrencyRequest changes the display currency
type CurrencyRequest struct {
	Currency string `json:"currency" validate:"required,display_currency"`
}

// CurrencyResponse describes the display currency
type CurrencyResponse struct {
	Currency  string   `json:"currency"`
	Supported []string `json:"supported"`
}

// RatesResponse holds the cached exchange rates
type RatesResponse struct {
	SC model.ExchangeRateTable `json:"sc"`
	SF model.ExchangeRateTable `json:"sf"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("display_currency", func(fl validator.FieldLevel) bool {
		_, ok := model.LookupCurrency(fl.Field().String())
		return ok
	})
	return v
}()

func New(client service.Stats, store storage.Store, icons *Icons) *Dashboard {
	return &Dashboard{
		client: client,
		store:  store,
		icons:  icons,
	}
}

type Dashboard struct {
	client service.Stats // stats API, the only network access of the views
	store  storage.Store // shared state
	icons  *Icons        // registered icon ids
}

// Load fetches every section concurrently. A failed section is
// reported in View.Errors and does not fail the others.
func (d *Dashboard) Load(ctx context.Context, end time.Time) View {
	var (
		view = View{
			Currency:       d.store.Currency(),
			ExchangeRateSC: d.store.ExchangeRateSC(),
			ExchangeRateSF: d.store.ExchangeRateSF(),
			Snapshots:      []model.Snapshot{},
		}
		mu      sync.Mutex
		g, gctx = errgroup.WithContext(ctx)
	)

	fail := func(section string, err error) {
		log.Warn().Err(err).Str("section", section).Msg("unable to load dashboard section")

		mu.Lock()
		defer mu.Unlock()
		if view.Errors == nil {
			view.Errors = make(map[string]string)
		}
		view.Errors[section] = err.Error()
	}

	g.Go(func() error {
		settings, err := d.client.GetAverageSettings(gctx)
		if err != nil {
			fail(SectionSettings, err)
			return nil
		}
		sv := renderSettings(settings, view.Currency, view.ExchangeRateSC)
		mu.Lock()
		view.Settings = &sv
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		status, err := d.client.GetStatus(gctx)
		if err != nil {
			fail(SectionStatus, err)
			return nil
		}
		mu.Lock()
		view.Status = &status
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		totals, err := d.client.GetTotals(gctx, end)
		if err != nil {
			fail(SectionTotals, err)
			return nil
		}
		mu.Lock()
		view.Totals = &totals
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		snapshots, err := d.client.GetSnapshots(gctx, end)
		if err != nil {
			fail(SectionSnapshots, err)
			return nil
		}
		mu.Lock()
		view.Snapshots = snapshots
		mu.Unlock()
		return nil
	})

	// sections never return errors
	_ = g.Wait()

	return view
}

// LoadSettings fetches the average host settings and renders
// them in the display currency
func (d *Dashboard) LoadSettings(ctx context.Context) (SettingsView, error) {
	settings, err := d.client.GetAverageSettings(ctx)
	if err != nil {
		return SettingsView{}, err
	}

	return renderSettings(settings, d.store.Currency(), d.store.ExchangeRateSC()), nil
}

// renderSettings converts hastings prices using the SC rate of
// currency. Prices are left empty when no rate is known.
func renderSettings(settings model.HostSettings, code string, rates model.ExchangeRateTable) SettingsView {
	view := SettingsView{Settings: settings}

	c, ok := model.LookupCurrency(code)
	if !ok {
		return view
	}

	rate, ok := rates[c.Code]
	if c.Code == "sc" {
		rate, ok = 1, true
	}
	if !ok {
		return view
	}

	format := func(hastings decimal.Decimal) string {
		return model.Format(model.Convert(hastings, rate), c)
	}

	view.StoragePrice = format(model.StoragePerTBMonth(settings.StoragePrice))
	view.UploadPrice = format(model.BandwidthPerTB(settings.UploadBandwidthPrice))
	view.DownloadPrice = format(model.BandwidthPerTB(settings.DownloadBandwidthPrice))
	view.ContractPrice = format(settings.ContractPrice)

	return view
}

// GetDashboard godoc
//
//	@Summary		Dashboard view
//	@Description	settings, status, totals and snapshots rendered in the display currency
//	@Tags			dashboard
//	@Param			end	query	int	false	"Unix timestamp, defaults to now" example(1600000000)
//	@Success		200	{object}	View
//	@Router			/api/dashboard [get]
func (d *Dashboard) GetDashboard(ctx *fiber.Ctx) error {
	var end time.Time
	if unix := ctx.QueryInt("end", 0); unix > 0 {
		end = time.Unix(int64(unix), 0)
	}

	return ctx.JSON(d.Load(ctx.UserContext(), end))
}

// GetCurrency godoc
//
//	@Summary		Display currency
//	@Tags			currency
//	@Success		200	{object}	CurrencyResponse
//	@Router			/api/currency [get]
func (d *Dashboard) GetCurrency(ctx *fiber.Ctx) error {
	return ctx.JSON(CurrencyResponse{
		Currency:  d.store.Currency(),
		Supported: model.CurrencyCodes(),
	})
}

// SetCurrency godoc
//
//	@Summary		Change the display currency
//	@Tags			currency
//	@Param			request	body	CurrencyRequest	true	"New currency"
//	@Success		200	{object}	CurrencyResponse
//	@Failure		400	{object}	model.APIResponse	"unsupported currency"
//	@Router			/api/currency [put]
func (d *Dashboard) SetCurrency(ctx *fiber.Ctx) error {
	var req CurrencyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return sendError(ctx, http.StatusBadRequest, "invalid request body")
	}

	if err := ValidateCurrency(req.Currency); err != nil {
		return sendError(ctx, http.StatusBadRequest, err.Error())
	}

	if err := d.store.SetCurrency(ctx.UserContext(), strings.ToLower(req.Currency)); err != nil {
		log.Error().Err(err).Str("currency", req.Currency).Msg("unable to set display currency")
		return sendError(ctx, http.StatusInternalServerError, "unable to save display currency")
	}

	return d.GetCurrency(ctx)
}

// ValidateCurrency returns service.ErrUnsupportedCurrency
// wrapped with the code when it is not supported
func ValidateCurrency(code string) error {
	req := CurrencyRequest{Currency: code}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", service.ErrUnsupportedCurrency, code)
		}
		return err
	}

	return nil
}

// GetRates godoc
//
//	@Summary		Cached exchange rates
//	@Tags			rates
//	@Success		200	{object}	RatesResponse
//	@Router			/api/rates [get]
func (d *Dashboard) GetRates(ctx *fiber.Ctx) error {
	return ctx.JSON(RatesResponse{
		SC: d.store.ExchangeRateSC(),
		SF: d.store.ExchangeRateSF(),
	})
}

// GetIcons godoc
//
//	@Summary		Registered icon identifiers
//	@Tags			dashboard
//	@Success		200	{array}	string
//	@Router			/api/icons [get]
func (d *Dashboard) GetIcons(ctx *fiber.Ctx) error {
	return ctx.JSON(d.icons.List())
}

func sendError(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(model.APIResponse{
		Message: message,
		Type:    "error",
	})
}
