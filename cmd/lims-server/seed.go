package main

import (
	"context"
	"fmt"

	"github.com/lims/lims/internal/domain/catalog"
)

// seedCatalog inserts the default test catalog when the tests table is
// empty. An already populated catalog is left untouched so repeated seed
// runs are safe.
func seedCatalog(ctx context.Context, svc *catalog.Service) (int, error) {
	_, total, err := svc.ListTests(ctx, 1, 0)
	if err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}

	for i := range defaultTests {
		t := defaultTests[i]
		if err := svc.CreateTest(ctx, &t); err != nil {
			return 0, fmt.Errorf("insert %q: %w", t.NameEn, err)
		}
	}
	return len(defaultTests), nil
}

func num(name, unit string) catalog.ResultField {
	return catalog.ResultField{Name: name, Type: catalog.FieldTypeNumber, Unit: unit}
}

func txt(name string) catalog.ResultField {
	return catalog.ResultField{Name: name, Type: catalog.FieldTypeText}
}

var defaultTests = []catalog.Test{
	// Blood tests
	{
		NameAr:          "صورة دم كاملة",
		NameEn:          "Complete Blood Count (CBC)",
		Price:           80,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("WBC", "x10³/µL"), num("RBC", "x10⁶/µL"), num("Hemoglobin", "g/dL"),
			num("Hematocrit", "%"), num("Platelets", "x10³/µL"), num("MCV", "fL"),
			num("MCH", "pg"), num("MCHC", "g/dL"), num("RDW", "%"),
		},
	},
	{
		NameAr:          "سكر صيام",
		NameEn:          "Fasting Blood Sugar (FBS)",
		Price:           30,
		TurnaroundHours: 2,
		ResultFields:    []catalog.ResultField{num("Glucose", "mg/dL")},
	},
	{
		NameAr:          "سكر تراكمي",
		NameEn:          "HbA1c Test",
		Price:           100,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("HbA1c", "%"), num("Estimated Average Glucose", "mg/dL"),
		},
	},
	{
		NameAr:          "ملف الدهون",
		NameEn:          "Lipid Profile",
		Price:           90,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("Total Cholesterol", "mg/dL"), num("HDL", "mg/dL"), num("LDL", "mg/dL"),
			num("Triglycerides", "mg/dL"), num("VLDL", "mg/dL"),
		},
	},
	{
		NameAr:          "إلكتروليتات",
		NameEn:          "Electrolytes Panel",
		Price:           70,
		TurnaroundHours: 12,
		ResultFields: []catalog.ResultField{
			num("Sodium (Na)", "mmol/L"), num("Potassium (K)", "mmol/L"),
			num("Chloride (Cl)", "mmol/L"), num("Bicarbonate (HCO3)", "mmol/L"),
		},
	},
	{
		NameAr:          "إنزيمات القلب",
		NameEn:          "Cardiac Enzymes",
		Price:           250,
		TurnaroundHours: 6,
		ResultFields: []catalog.ResultField{
			num("Troponin I", "ng/mL"), num("CK-MB", "U/L"), num("Myoglobin", "ng/mL"),
		},
	},
	{
		NameAr:          "مؤشرات التخثر",
		NameEn:          "Coagulation Profile",
		Price:           140,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("PT", "seconds"), num("PTT", "seconds"), num("INR", ""),
			num("Fibrinogen", "mg/dL"),
		},
	},
	// Organ function tests
	{
		NameAr:          "وظائف كبد",
		NameEn:          "Liver Function Tests (LFT)",
		Price:           120,
		TurnaroundHours: 48,
		ResultFields: []catalog.ResultField{
			num("ALT", "U/L"), num("AST", "U/L"), num("Albumin", "g/dL"),
			num("Total Bilirubin", "mg/dL"), num("Direct Bilirubin", "mg/dL"),
			num("ALP", "U/L"), num("GGT", "U/L"),
		},
	},
	{
		NameAr:          "وظائف كلى",
		NameEn:          "Kidney Function Tests (KFT)",
		Price:           150,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("Creatinine", "mg/dL"), num("Urea", "mg/dL"), num("Uric Acid", "mg/dL"),
			num("BUN", "mg/dL"), num("Sodium", "mmol/L"), num("Potassium", "mmol/L"),
		},
	},
	{
		NameAr:          "أميلاز وليباز",
		NameEn:          "Amylase and Lipase",
		Price:           130,
		TurnaroundHours: 12,
		ResultFields:    []catalog.ResultField{num("Amylase", "U/L"), num("Lipase", "U/L")},
	},
	// Hormone tests
	{
		NameAr:          "هرمونات الغدة الدرقية",
		NameEn:          "Thyroid Function Tests",
		Price:           200,
		TurnaroundHours: 72,
		ResultFields: []catalog.ResultField{
			num("TSH", "µIU/mL"), num("T3", "ng/dL"), num("T4", "µg/dL"),
			num("Free T4", "ng/dL"), num("Free T3", "pg/mL"),
		},
	},
	{
		NameAr:          "كورتيزول",
		NameEn:          "Cortisol",
		Price:           160,
		TurnaroundHours: 48,
		ResultFields:    []catalog.ResultField{num("Cortisol", "µg/dL")},
	},
	{
		NameAr:          "تستوستيرون",
		NameEn:          "Testosterone",
		Price:           140,
		TurnaroundHours: 48,
		ResultFields: []catalog.ResultField{
			num("Total Testosterone", "ng/dL"), num("Free Testosterone", "pg/mL"),
		},
	},
	{
		NameAr:          "هرمونات الإباضة",
		NameEn:          "FSH and LH",
		Price:           190,
		TurnaroundHours: 48,
		ResultFields:    []catalog.ResultField{num("FSH", "mIU/mL"), num("LH", "mIU/mL")},
	},
	{
		NameAr:          "برولاكتين",
		NameEn:          "Prolactin",
		Price:           120,
		TurnaroundHours: 48,
		ResultFields:    []catalog.ResultField{num("Prolactin", "ng/mL")},
	},
	{
		NameAr:          "هرمون النمو",
		NameEn:          "Growth Hormone (GH)",
		Price:           220,
		TurnaroundHours: 72,
		ResultFields:    []catalog.ResultField{num("GH", "ng/mL")},
	},
	// Vitamins and minerals
	{
		NameAr:          "فيتامين د",
		NameEn:          "Vitamin D (25-OH)",
		Price:           300,
		TurnaroundHours: 48,
		ResultFields:    []catalog.ResultField{num("25-Hydroxy Vitamin D", "ng/mL")},
	},
	{
		NameAr:          "فيتامين ب12",
		NameEn:          "Vitamin B12",
		Price:           150,
		TurnaroundHours: 48,
		ResultFields:    []catalog.ResultField{num("Vitamin B12", "pg/mL")},
	},
	{
		NameAr:          "فيريتين",
		NameEn:          "Ferritin",
		Price:           120,
		TurnaroundHours: 24,
		ResultFields:    []catalog.ResultField{num("Ferritin", "ng/mL")},
	},
	{
		NameAr:          "حديد الدم",
		NameEn:          "Serum Iron",
		Price:           80,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("Iron", "µg/dL"), num("TIBC", "µg/dL"), num("Transferrin Saturation", "%"),
		},
	},
	{
		NameAr:          "كالسيوم",
		NameEn:          "Calcium",
		Price:           60,
		TurnaroundHours: 12,
		ResultFields: []catalog.ResultField{
			num("Total Calcium", "mg/dL"), num("Ionized Calcium", "mmol/L"),
		},
	},
	{
		NameAr:          "مغنيسيوم",
		NameEn:          "Magnesium",
		Price:           60,
		TurnaroundHours: 12,
		ResultFields:    []catalog.ResultField{num("Magnesium", "mg/dL")},
	},
	// Immunology and infectious diseases
	{
		NameAr:          "مستضد البروستاتا",
		NameEn:          "Prostate Specific Antigen (PSA)",
		Price:           200,
		TurnaroundHours: 24,
		ResultFields:    []catalog.ResultField{num("Total PSA", "ng/mL"), num("Free PSA", "ng/mL")},
	},
	{
		NameAr:          "بروتين سي التفاعلي",
		NameEn:          "C-Reactive Protein (CRP)",
		Price:           80,
		TurnaroundHours: 12,
		ResultFields:    []catalog.ResultField{num("CRP", "mg/L")},
	},
	{
		NameAr:          "سرعة الترسيب",
		NameEn:          "Erythrocyte Sedimentation Rate (ESR)",
		Price:           40,
		TurnaroundHours: 2,
		ResultFields:    []catalog.ResultField{num("ESR", "mm/hr")},
	},
	{
		NameAr:          "فحص فيروس نقص المناعة",
		NameEn:          "HIV Test",
		Price:           250,
		TurnaroundHours: 72,
		ResultFields:    []catalog.ResultField{txt("HIV Result"), txt("Antibody Status")},
	},
	{
		NameAr:          "فحص التهاب الكبد",
		NameEn:          "Hepatitis Panel",
		Price:           400,
		TurnaroundHours: 48,
		ResultFields: []catalog.ResultField{
			txt("HBsAg"), txt("Anti-HCV"), txt("HAV IgM"), txt("HBV Core Ab"),
		},
	},
	{
		NameAr:          "عامل الروماتويد",
		NameEn:          "Rheumatoid Factor (RF)",
		Price:           110,
		TurnaroundHours: 24,
		ResultFields:    []catalog.ResultField{num("RF", "IU/mL")},
	},
	{
		NameAr:          "جسم مضاد نووي",
		NameEn:          "Antinuclear Antibody (ANA)",
		Price:           220,
		TurnaroundHours: 48,
		ResultFields:    []catalog.ResultField{txt("ANA Titer"), txt("Pattern")},
	},
	{
		NameAr:          "فحص السل",
		NameEn:          "Tuberculosis (TB) Test",
		Price:           300,
		TurnaroundHours: 72,
		ResultFields:    []catalog.ResultField{txt("TST Result"), txt("Interferon-Gamma Release")},
	},
	// Other tests
	{
		NameAr:          "تحليل البول",
		NameEn:          "Urine Analysis",
		Price:           50,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			txt("Color"), txt("Appearance"), num("pH", ""), txt("Protein"), txt("Glucose"),
			{Name: "RBC", Type: catalog.FieldTypeText, Unit: "/HPF"},
			{Name: "WBC", Type: catalog.FieldTypeText, Unit: "/HPF"},
			num("Specific Gravity", ""), txt("Ketones"),
		},
	},
	{
		NameAr:          "تحليل البراز",
		NameEn:          "Stool Analysis",
		Price:           70,
		TurnaroundHours: 48,
		ResultFields: []catalog.ResultField{
			txt("Consistency"), txt("Color"), txt("Mucus"), txt("Blood"),
			txt("Parasites"), txt("Occult Blood"),
		},
	},
	{
		NameAr:          "تحليل الحمل",
		NameEn:          "Pregnancy Test (Beta HCG)",
		Price:           60,
		TurnaroundHours: 1,
		ResultFields:    []catalog.ResultField{txt("Result"), num("HCG Level", "mIU/mL")},
	},
	{
		NameAr:          "تحليل السائل المنوي",
		NameEn:          "Semen Analysis",
		Price:           180,
		TurnaroundHours: 72,
		ResultFields: []catalog.ResultField{
			num("Volume", "mL"), num("Sperm Count", "million/mL"), num("Motility", "%"),
			num("Morphology", "%"), num("pH", ""), num("Liquefaction Time", "minutes"),
		},
	},
	{
		NameAr:          "فصيلة الدم",
		NameEn:          "Blood Group and Rh Factor",
		Price:           50,
		TurnaroundHours: 1,
		ResultFields:    []catalog.ResultField{txt("ABO Group"), txt("Rh Factor")},
	},
	{
		NameAr:          "نقص إنزيم G6PD",
		NameEn:          "G6PD Deficiency Test",
		Price:           180,
		TurnaroundHours: 72,
		ResultFields:    []catalog.ResultField{num("G6PD Activity", "U/g Hb"), txt("Result")},
	},
	{
		NameAr:          "فحص الثلاسيميا",
		NameEn:          "Thalassemia Screening",
		Price:           250,
		TurnaroundHours: 72,
		ResultFields: []catalog.ResultField{
			txt("Hemoglobin Electrophoresis"), num("HbA2", "%"), num("HbF", "%"),
		},
	},
	{
		NameAr:          "فحص فقر الدم",
		NameEn:          "Anemia Panel",
		Price:           200,
		TurnaroundHours: 24,
		ResultFields: []catalog.ResultField{
			num("Hemoglobin", "g/dL"), num("Ferritin", "ng/mL"), num("Iron", "µg/dL"),
			num("TIBC", "µg/dL"),
		},
	},
	{
		NameAr:          "فحص السكر العشوائي",
		NameEn:          "Random Blood Sugar (RBS)",
		Price:           35,
		TurnaroundHours: 2,
		ResultFields:    []catalog.ResultField{num("Glucose", "mg/dL")},
	},
	{
		NameAr:          "فحص الأجسام المضادة للغدة الدرقية",
		NameEn:          "Thyroid Antibodies",
		Price:           250,
		TurnaroundHours: 72,
		ResultFields: []catalog.ResultField{
			num("Anti-TPO", "IU/mL"), num("Anti-Thyroglobulin", "IU/mL"),
		},
	},
	{
		NameAr:          "فحص الكلى الشامل",
		NameEn:          "Comprehensive Kidney Profile",
		Price:           220,
		TurnaroundHours: 48,
		ResultFields: []catalog.ResultField{
			num("Creatinine", "mg/dL"), num("Urea", "mg/dL"), num("Uric Acid", "mg/dL"),
			num("Albumin", "g/dL"), txt("Electrolytes"),
		},
	},
}
