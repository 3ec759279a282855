package guideadmin

import (
	"fmt"
	"time"

	"guidetrack-backend/lib/timezone"
)

type LocatorKind int

const (
	// LocatorDusk finds the row carrying a stable `dusk` attribute marker
	// and reads the value container inside it. The admin panel stamps these
	// markers on every detail row regardless of layout changes.
	LocatorDusk LocatorKind = iota
	// LocatorLabel anchors on the visible label text of a definition list
	// entry and reads the sibling value container.
	LocatorLabel
)

type Locator struct {
	Kind LocatorKind
	Key  string
}

// Logical order fields every tenant resolves.
const (
	FieldId            = "id"
	FieldStatus        = "status"
	FieldGuideNumber   = "guide_number"
	FieldCreationDate  = "creation_date"
	FieldWarehouse     = "warehouse"
	FieldCarrier       = "carrier"
	FieldStore         = "store"
	FieldProduct       = "product"
	FieldSourceOrderId = "source_order_id"
)

// HistoryColumns maps the logical parts of a status-history row onto the
// normalized column keys the tenant's table headers produce.
type HistoryColumns struct {
	Status    string
	Comment   string
	Timestamp string
	Actor     string
}

type Tenant struct {
	Name          string
	BaseUrl       string
	CookieDomain  string
	SessionCookie string
	XsrfCookie    string

	// ReadyMarker must appear in the document before the detail view is
	// considered rendered. HistoryMarker locates the status-history table
	// and is allowed to be absent.
	ReadyMarker   string
	HistoryMarker string

	Locators map[string]Locator
	History  HistoryColumns

	// date normalization
	DatePrefix  string
	MonthNames  map[string]string
	DateLayouts []string
	Location    *time.Location
}

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

var Colombia = Tenant{
	Name:          "colombia",
	BaseUrl:       "https://hoko.com.co/admin/resources/guides/",
	CookieDomain:  ".hoko.com.co",
	SessionCookie: "hoko_colombia_session",
	XsrfCookie:    "XSRF-TOKEN",
	ReadyMarker:   `div[dusk="id"]`,
	HistoryMarker: `table[dusk="guide-status-history"]`,
	Locators: map[string]Locator{
		FieldId:            {Kind: LocatorDusk, Key: "id"},
		FieldStatus:        {Kind: LocatorDusk, Key: "ComputedField"},
		FieldGuideNumber:   {Kind: LocatorDusk, Key: "number"},
		FieldCreationDate:  {Kind: LocatorDusk, Key: "fechas"},
		FieldWarehouse:     {Kind: LocatorDusk, Key: "throughCellar"},
		FieldCarrier:       {Kind: LocatorDusk, Key: "transportadora"},
		FieldStore:         {Kind: LocatorDusk, Key: "throughStore"},
		FieldProduct:       {Kind: LocatorDusk, Key: "productos"},
		FieldSourceOrderId: {Kind: LocatorDusk, Key: "order"},
	},
	History: HistoryColumns{
		Status:    "estado",
		Comment:   "comentarios",
		Timestamp: "fecha_y_hora",
		Actor:     "creado_por",
	},
	DateLayouts: []string{
		"1/2/2006, 03:04 PM MST",
	},
	Location: timezone.Location,
}

var Mexico = Tenant{
	Name:          "mexico",
	BaseUrl:       "https://hoko.com.mx/admin/resources/guides/",
	CookieDomain:  ".hoko.com.mx",
	SessionCookie: "hoko_mexico_session",
	XsrfCookie:    "XSRF-TOKEN",
	ReadyMarker:   `dt[data-field="id"]`,
	HistoryMarker: `table[data-table="status-history"]`,
	Locators: map[string]Locator{
		FieldId:            {Kind: LocatorLabel, Key: "ID"},
		FieldStatus:        {Kind: LocatorLabel, Key: "Estado"},
		FieldGuideNumber:   {Kind: LocatorLabel, Key: "Guía"},
		FieldCreationDate:  {Kind: LocatorLabel, Key: "Fecha de creación"},
		FieldWarehouse:     {Kind: LocatorLabel, Key: "Bodega"},
		FieldCarrier:       {Kind: LocatorLabel, Key: "Transportadora"},
		FieldStore:         {Kind: LocatorLabel, Key: "Tienda"},
		FieldProduct:       {Kind: LocatorLabel, Key: "Productos"},
		FieldSourceOrderId: {Kind: LocatorLabel, Key: "Orden"},
	},
	History: HistoryColumns{
		Status:    "estado",
		Comment:   "comentarios",
		Timestamp: "fecha_y_hora",
		Actor:     "creado_por",
	},
	DatePrefix: "Creado el",
	MonthNames: map[string]string{
		"enero":      "January",
		"febrero":    "February",
		"marzo":      "March",
		"abril":      "April",
		"mayo":       "May",
		"junio":      "June",
		"julio":      "July",
		"agosto":     "August",
		"septiembre": "September",
		"octubre":    "October",
		"noviembre":  "November",
		"diciembre":  "December",
	},
	DateLayouts: []string{
		"2 January 2006 15:04:05",
	},
	Location: mustLocation("America/Mexico_City"),
}

var Chile = Tenant{
	Name:          "chile",
	BaseUrl:       "https://hoko.cl/admin/resources/guides/",
	CookieDomain:  ".hoko.cl",
	SessionCookie: "hoko_chile_session",
	XsrfCookie:    "XSRF-TOKEN",
	ReadyMarker:   `div[dusk="id"]`,
	HistoryMarker: `table[dusk="guide-status-history"]`,
	Locators: map[string]Locator{
		FieldId:            {Kind: LocatorDusk, Key: "id"},
		FieldStatus:        {Kind: LocatorDusk, Key: "ComputedField"},
		FieldGuideNumber:   {Kind: LocatorDusk, Key: "number"},
		FieldCreationDate:  {Kind: LocatorDusk, Key: "fechas"},
		FieldWarehouse:     {Kind: LocatorDusk, Key: "throughCellar"},
		FieldCarrier:       {Kind: LocatorDusk, Key: "transportadora"},
		FieldStore:         {Kind: LocatorDusk, Key: "throughStore"},
		FieldProduct:       {Kind: LocatorDusk, Key: "productos"},
		FieldSourceOrderId: {Kind: LocatorDusk, Key: "order"},
	},
	History: HistoryColumns{
		Status:    "estado",
		Comment:   "comentarios",
		Timestamp: "fecha_y_hora",
		Actor:     "creado_por",
	},
	DateLayouts: []string{
		"2006-01-02 03:04:05 PM",
		"1/2/2006, 03:04 PM MST",
	},
	Location: mustLocation("America/Santiago"),
}

var tenants = map[string]Tenant{
	Colombia.Name: Colombia,
	Mexico.Name:   Mexico,
	Chile.Name:    Chile,
}

func TenantByName(name string) (Tenant, error) {
	t, ok := tenants[name]
	if !ok {
		return Tenant{}, fmt.Errorf("unknown tenant '%s'", name)
	}
	return t, nil
}
