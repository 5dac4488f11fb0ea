package methodology

import "sort"

// TotalKi is the expected sum of all indicator weights for higher education
// institutions (35 indicators for research universities would give 52.5).
const TotalKi = 54.0

// Block is one named evaluation category with its ordered indicator set.
type Block struct {
	Name       string
	Indicators []string
}

// Group is one attestation grade band over the composite score scale.
type Group struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

// Registry is the canonical attestation methodology: the 37 indicator weights,
// their block membership, the science direction labels and the grade bands.
// It is constructed once at startup and never mutated afterwards; every
// component that needs methodology data receives it explicitly.
type Registry struct {
	TotalKi    float64
	Indicators map[string]float64
	Blocks     []Block
	Directions map[int]string
	Groups     map[string]Group
}

// New builds the registry from the official methodology constants.
func New() *Registry {
	return &Registry{
		TotalKi: TotalKi,
		Indicators: map[string]float64{
			// Кадровий потенціал
			"I1": 1.0, "I2": 1.0, "I3": 1.0, "I4": 1.0, "I5": 0.5, "I6": 1.0,
			// Фінансова діяльність
			"I7": 1.0, "I8": 3.0, "I9": 2.0, "I10": 1.0, "I11": 3.0, "I12": 2.0, "I13": 1.0, "I14": 0.5,
			// Публікаційна активність
			"I15": 1.5, "I16": 1.2, "I17": 1.0, "I18": 1.0, "I19": 1.5, "I20": 0.75, "I21": 0.35, "I22": 0.5, "I23": 0.2,
			// Інтелектуальна власність
			"I24": 1.0, "I25": 1.0, "I26": 3.0, "I27": 1.0, "I28": 1.0, "I29": 4.0, "I30": 0.5, "I31": 2.0,
			// Конкурсне фінансування
			"I32": 4.0, "I33": 1.0, "I34": 2.0, "I35": 0.5, "I36": 2.0, "I37": 4.0,
		},
		Blocks: []Block{
			{Name: "Кадровий потенціал", Indicators: []string{"I1", "I2", "I3", "I4", "I5", "I6"}},
			{Name: "Фінансова діяльність", Indicators: []string{"I7", "I8", "I9", "I10", "I11", "I12", "I13", "I14"}},
			{Name: "Публікаційна активність", Indicators: []string{"I15", "I16", "I17", "I18", "I19", "I20", "I21", "I22"}},
			{Name: "Інтелектуальна власність", Indicators: []string{"I23", "I24", "I25", "I26", "I27", "I28", "I29", "I30", "I31"}},
			{Name: "Конкурсне фінансування", Indicators: []string{"I32", "I33", "I34", "I35", "I36", "I37"}},
		},
		Directions: map[int]string{
			1: "Аграрно-ветеринарний",
			2: "Гуманітарно-мистецький",
			3: "Суспільний",
			4: "Біомедичний",
			5: "Природничо-математичний",
			6: "Інженерно-технологічний",
			7: "Безпековий",
		},
		Groups: map[string]Group{
			"А": {Min: 75, Max: 100, Description: "Найвища оцінка ефективності"},
			"Б": {Min: 50, Max: 75, Description: "Висока оцінка ефективності"},
			"В": {Min: 25, Max: 50, Description: "Задовільна оцінка ефективності"},
			"Г": {Min: 0, Max: 25, Description: "НЕ ПРОЙШЛИ АТЕСТАЦІЮ"},
		},
	}
}

// KiSum returns the sum of all indicator weights.
func (r *Registry) KiSum() float64 {
	var sum float64
	for _, ki := range r.Indicators {
		sum += ki
	}
	return sum
}

// Identifiers returns all indicator identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.Indicators))
	for id := range r.Indicators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BlockSum returns the weight subtotal of the named block and whether the
// block exists.
func (r *Registry) BlockSum(name string) (float64, bool) {
	for _, b := range r.Blocks {
		if b.Name != name {
			continue
		}
		var sum float64
		for _, id := range b.Indicators {
			sum += r.Indicators[id]
		}
		return sum, true
	}
	return 0, false
}

// DirectionLabel returns the display label for a science direction code.
func (r *Registry) DirectionLabel(code int) (string, bool) {
	label, ok := r.Directions[code]
	return label, ok
}
