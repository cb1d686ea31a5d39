package mock

// Dimensions: geology, animals, sea, activity/time.
var defaultVocabulary = map[string][]float32{
	"volcano":    {1.0, 0.2, -0.1, 0.1},
	"volcanoes":  {1.0, 0.2, -0.1, 0.1},
	"volcanic":   {0.95, 0.25, -0.05, 0.2},
	"eruption":   {0.9, 0.1, -0.1, 0.4},
	"erupt":      {0.85, 0.05, -0.1, 0.5},
	"lava":       {0.95, 0.0, 0.0, 0.2},
	"magma":      {0.95, 0.05, -0.05, 0.1},
	"mountain":   {0.8, 0.3, -0.2, 0.0},
	"rock":       {0.7, 0.0, 0.1, 0.0},
	"earthquake": {0.85, 0.0, 0.1, 0.4},
	"activity":   {0.2, 0.2, 0.2, 1.0},
	"coast":      {0.1, 0.1, 1.0, 0.0},
	"ocean":      {0.0, 0.2, 1.0, 0.0},
	"sea":        {0.0, 0.2, 1.0, 0.05},
	"beach":      {0.05, 0.1, 0.95, 0.1},
	"bird":       {-0.5, 1.0, 0.0, 0.0},
	"birds":      {-0.5, 1.0, 0.0, 0.0},
	"migration":  {-0.6, 0.9, 0.1, 0.3},
	"migrate":    {-0.6, 0.85, 0.1, 0.4},
	"wing":       {-0.4, 0.9, 0.0, 0.1},
	"nest":       {-0.3, 0.9, 0.0, 0.0},
	"fish":       {-0.4, 0.8, 0.6, 0.0},
	"whale":      {-0.3, 0.8, 0.7, 0.0},
	"cat":        {-0.2, 1.0, -0.2, 0.0},
	"dog":        {-0.2, 1.0, -0.25, 0.05},
	"south":      {0.0, 0.1, 0.2, 0.3},
	"winter":     {0.0, 0.1, 0.0, 0.9},
	"summer":     {0.0, 0.1, 0.1, 0.9},
	"be":         {0.1, 0.1, 0.1, 0.1},
	"sit":        {0.0, 0.3, 0.0, 0.2},
}
