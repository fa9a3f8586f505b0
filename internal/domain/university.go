package domain

// University is static reference data: one row per pilot campus.
type University struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Timezone  string  `json:"tz"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
}
