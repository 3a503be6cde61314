package scoring

// Criterion is one named scoring rule a winning hand may satisfy.
type Criterion struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Points   int    `json:"points"`
	Category string `json:"category"`
}

// Category groups criteria for presentation. Ids are unique across the
// whole catalog, not just within a category.
type Category struct {
	Name     string      `json:"name"`
	Criteria []Criterion `json:"criteria"`
}

// OtherID is the wildcard criterion. Its faan value comes from the player
// at selection time, not from the catalog.
const OtherID = "other"

var categories = []Category{
	{
		Name: "Basic Scoring (1 番)",
		Criteria: []Criterion{
			{ID: "self-drawn", Name: "自摸 (Self-Drawn)", Points: 1, Category: "basic"},
			{ID: "concealed-hand", Name: "門前清 (Concealed Hand)", Points: 1, Category: "basic"},
			{ID: "all-chows", Name: "平糊 (All Chows)", Points: 1, Category: "basic"},
			{ID: "red-dragon", Name: "紅中 (Red Dragon)", Points: 1, Category: "basic"},
			{ID: "green-dragon", Name: "發財 (Green Dragon)", Points: 1, Category: "basic"},
			{ID: "white-dragon", Name: "白板 (White Dragon)", Points: 1, Category: "basic"},
			{ID: "prevailing-wind", Name: "圈風牌 (Prevailing Wind)", Points: 1, Category: "basic"},
			{ID: "seat-wind", Name: "門風 (Seat Wind)", Points: 1, Category: "basic"},
			{ID: "robbing-kong", Name: "搶槓 (Robbing the Kong)", Points: 1, Category: "basic"},
			{ID: "last-tile", Name: "海底撈月 (Last Tile Draw)", Points: 1, Category: "basic"},
		},
	},
	{
		Name: "Common Hands (3 番)",
		Criteria: []Criterion{
			{ID: "all-pungs", Name: "對對和 (All Pungs)", Points: 3, Category: "common"},
			{ID: "mixed-one-suit", Name: "混一色 (Mixed One Suit)", Points: 3, Category: "common"},
		},
	},
	{
		Name: "High Value Hands",
		Criteria: []Criterion{
			{ID: "small-three-dragons", Name: "小三元 (Small Three Dragons)", Points: 5, Category: "high"},
			{ID: "small-four-winds", Name: "小四喜 (Small Four Winds)", Points: 6, Category: "high"},
			{ID: "pure-one-suit", Name: "清一色 (Pure One Suit)", Points: 7, Category: "high"},
			{ID: "all-pungs-self-drawn", Name: "坎坎胡 (All Pungs Self-Drawn)", Points: 8, Category: "high"},
			{ID: "big-three-dragons", Name: "大三元 (Big Three Dragons)", Points: 8, Category: "high"},
		},
	},
	{
		Name: "Special Hands (10+ 番)",
		Criteria: []Criterion{
			{ID: "all-honors", Name: "字一色 (All Honors)", Points: 10, Category: "special"},
			{ID: "nine-gates", Name: "九子連環 (Nine Gates)", Points: 10, Category: "special"},
			{ID: "big-four-winds", Name: "大四喜 (Big Four Winds)", Points: 13, Category: "special"},
			{ID: "eighteen-arhats", Name: "十八羅漢 (Eighteen Arhats)", Points: 13, Category: "special"},
			{ID: "heavenly-hand", Name: "天糊 (Heavenly Hand)", Points: 13, Category: "special"},
			{ID: "earthly-hand", Name: "地糊 (Earthly Hand)", Points: 13, Category: "special"},
		},
	},
	{
		Name: "Other",
		Criteria: []Criterion{
			{ID: OtherID, Name: "其他 (Other)", Points: 0, Category: "other"},
		},
	},
}

// Catalog returns the fixed criteria catalog in display order.
func Catalog() []Category { return categories }

// CriterionByID looks a criterion up across all categories.
func CriterionByID(id string) (Criterion, bool) {
	for _, cat := range categories {
		for _, c := range cat.Criteria {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Criterion{}, false
}
