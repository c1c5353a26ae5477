package catalog

// Default devuelve el catálogo embebido. CATALOG_PATH permite reemplazarlo.
func Default() *Catalog {
	c := &Catalog{
		Aliases: map[string]string{
			"advil":       "ibuprofen",
			"motrin":      "ibuprofen",
			"nurofen":     "ibuprofen",
			"aleve":       "naproxen",
			"naprosyn":    "naproxen",
			"tylenol":     "acetaminophen",
			"paracetamol": "acetaminophen",
			"panadol":     "acetaminophen",
			"bayer":       "aspirin",
			"ecotrin":     "aspirin",
			"asa":         "aspirin",
			"lipitor":     "atorvastatin",
			"zocor":       "simvastatin",
			"crestor":     "rosuvastatin",
			"coumadin":    "warfarin",
			"jantoven":    "warfarin",
			"eliquis":     "apixaban",
			"xarelto":     "rivaroxaban",
			"plavix":      "clopidogrel",
			"glucophage":  "metformin",
			"prinivil":    "lisinopril",
			"zestril":     "lisinopril",
			"norvasc":     "amlodipine",
			"lasix":       "furosemide",
			"prilosec":    "omeprazole",
			"nexium":      "esomeprazole",
			"zoloft":      "sertraline",
			"prozac":      "fluoxetine",
			"lexapro":     "escitalopram",
			"ultram":      "tramadol",
			"synthroid":   "levothyroxine",
			"levoxyl":     "levothyroxine",
			"viagra":      "sildenafil",
			"nitrostat":   "nitroglycerin",
			"biaxin":      "clarithromycin",
			"k dur":       "potassium chloride",
			"klor con":    "potassium chloride",
			"tums":        "calcium carbonate",
			"benadryl":    "diphenhydramine",
			"zyrtec":      "cetirizine",
			"claritin":    "loratadine",
		},
		OTC: []string{
			"ibuprofen",
			"naproxen",
			"acetaminophen",
			"aspirin",
			"calcium carbonate",
			"diphenhydramine",
			"cetirizine",
			"loratadine",
			"omeprazole",
			"esomeprazole",
			"melatonin",
			"multivitamin",
			"magnesium",
			"zinc",
			"folic acid",
			"probiotic",
			"glucosamine",
			"coenzyme q10",
			"docusate",
			"senna",
		},
		OTCKeywords: []string{
			"vitamin",
			"supplement",
			"fish oil",
			"omega 3",
			"calcium",
			"iron",
			"biotin",
			"probiotic",
			"herbal",
		},
		Classes: map[string]string{
			"warfarin":           "anticoagulant",
			"apixaban":           "anticoagulant",
			"rivaroxaban":        "anticoagulant",
			"clopidogrel":        "antiplatelet",
			"ibuprofen":          "nsaid",
			"naproxen":           "nsaid",
			"aspirin":            "nsaid",
			"atorvastatin":       "statin",
			"simvastatin":        "statin",
			"rosuvastatin":       "statin",
			"lisinopril":         "ace inhibitor",
			"sertraline":         "ssri",
			"fluoxetine":         "ssri",
			"escitalopram":       "ssri",
			"sildenafil":         "pde5 inhibitor",
			"nitroglycerin":      "nitrate",
			"potassium chloride": "potassium supplement",
			"levothyroxine":      "thyroid hormone",
			"calcium carbonate":  "calcium supplement",
		},
		Interactions: []InteractionRule{
			{A: "anticoagulant", B: "nsaid", Description: "increased bleeding risk"},
			{A: "anticoagulant", B: "antiplatelet", Description: "increased bleeding risk"},
			{A: "ssri", B: "nsaid", Description: "increased gastrointestinal bleeding risk"},
			{A: "ssri", B: "tramadol", Description: "risk of serotonin syndrome"},
			{A: "simvastatin", B: "clarithromycin", Description: "increased statin levels and risk of muscle damage"},
			{A: "ace inhibitor", B: "potassium supplement", Description: "risk of high potassium levels"},
			{A: "pde5 inhibitor", B: "nitrate", Description: "risk of severe low blood pressure"},
			{A: "thyroid hormone", B: "calcium supplement", Description: "calcium reduces levothyroxine absorption; separate doses by 4 hours"},
		},
	}
	c.index()
	return c
}
