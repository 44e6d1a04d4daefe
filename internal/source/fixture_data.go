package source

import "sevanear/internal/domain"

// Canned catalog used when the app runs without a backend. The set is small
// on purpose: three hospitals around Kozhikode, six categories, six listings.

func fixtureHospitals() []domain.Hospital {
	return []domain.Hospital{
		{
			ID:       "1",
			Name:     "Medical College Hospital Kozhikode",
			Location: domain.Coordinate{Latitude: 11.2588, Longitude: 75.7804},
			Address:  "Medical College, Kozhikode",
			District: "Kozhikode",
			Phone:    "0495-2350471",
		},
		{
			ID:       "2",
			Name:     "Baby Memorial Hospital",
			Location: domain.Coordinate{Latitude: 11.2513, Longitude: 75.7777},
			Address:  "Indira Gandhi Rd, Kozhikode",
			District: "Kozhikode",
			Phone:    "0495-2366001",
		},
		{
			ID:       "3",
			Name:     "Malabar Cancer Centre",
			Location: domain.Coordinate{Latitude: 11.2631, Longitude: 75.7847},
			Address:  "Moozhikkal, Kozhikode",
			District: "Kozhikode",
			Phone:    "0495-2370101",
		},
	}
}

func fixtureServiceTypes() []domain.ServiceType {
	return []domain.ServiceType{
		{ID: 1, Name: "Food", Icon: "🍽️"},
		{ID: 2, Name: "Medicine", Icon: "💊"},
		{ID: 3, Name: "Shelter", Icon: "🏠"},
		{ID: 4, Name: "Medical Care", Icon: "🏥"},
		{ID: 5, Name: "Transport", Icon: "🚗"},
		{ID: 6, Name: "Counseling", Icon: "💬"},
	}
}

func fixtureServices() []domain.Service {
	return []domain.Service{
		{
			ID:              "s1",
			HospitalID:      "1",
			HospitalName:    "Medical College Hospital Kozhikode",
			ServiceTypeID:   1,
			ServiceTypeName: "Food",
			Name:            "Free Patient Meals",
			Provider:        "Helping Hands NGO",
			ProviderContact: "9876543210",
			Description:     "Free meals for cancer patients undergoing treatment",
			Timings:         "8:00 AM - 8:00 PM",
			Eligibility:     "Cancer patients with medical certificate",
			RequiredDocs:    "Medical certificate, Patient ID card",
			Location:        domain.Coordinate{Latitude: 11.2588, Longitude: 75.7804},
			Active:          true,
		},
		{
			ID:              "s2",
			HospitalID:      "1",
			HospitalName:    "Medical College Hospital Kozhikode",
			ServiceTypeID:   2,
			ServiceTypeName: "Medicine",
			Name:            "Free TB Medicines",
			Provider:        "Care Foundation",
			ProviderContact: "9876543211",
			Description:     "Free medicines for TB patients",
			Timings:         "9:00 AM - 5:00 PM",
			Eligibility:     "TB patients registered in government program",
			RequiredDocs:    "TB registration card, Prescription",
			Location:        domain.Coordinate{Latitude: 11.259, Longitude: 75.78},
			Active:          true,
		},
		{
			ID:              "s3",
			HospitalID:      "1",
			HospitalName:    "Medical College Hospital Kozhikode",
			ServiceTypeID:   3,
			ServiceTypeName: "Shelter",
			Name:            "Attendant Accommodation",
			Provider:        "Hope House",
			ProviderContact: "9876543212",
			Description:     "Free accommodation for patient attendants",
			Timings:         "24 hours",
			Eligibility:     "Attendants of critical patients",
			RequiredDocs:    "Patient admission slip",
			Location:        domain.Coordinate{Latitude: 11.2585, Longitude: 75.781},
			Active:          true,
		},
		{
			ID:              "s4",
			HospitalID:      "2",
			HospitalName:    "Baby Memorial Hospital",
			ServiceTypeID:   1,
			ServiceTypeName: "Food",
			Name:            "Subsidized Canteen",
			Provider:        "Community Kitchen",
			ProviderContact: "9876543213",
			Description:     "Subsidized meals for low-income patients",
			Timings:         "7:00 AM - 9:00 PM",
			Eligibility:     "Below poverty line patients",
			RequiredDocs:    "BPL card, Patient ID",
			Location:        domain.Coordinate{Latitude: 11.2513, Longitude: 75.7777},
			Active:          true,
		},
		{
			ID:              "s5",
			HospitalID:      "3",
			HospitalName:    "Malabar Cancer Centre",
			ServiceTypeID:   1,
			ServiceTypeName: "Food",
			Name:            "Nutritious Meal Programme",
			Provider:        "Cancer Care Volunteers",
			ProviderContact: "9876543214",
			Description:     "Free nutritious meals for cancer patients",
			Timings:         "8:00 AM - 8:00 PM",
			Eligibility:     "All cancer patients",
			RequiredDocs:    "Hospital registration",
			Location:        domain.Coordinate{Latitude: 11.2631, Longitude: 75.7847},
			Active:          true,
		},
		{
			ID:              "s6",
			HospitalID:      "3",
			HospitalName:    "Malabar Cancer Centre",
			ServiceTypeID:   5,
			ServiceTypeName: "Transport",
			Name:            "Free Ambulance",
			Provider:        "Free Ambulance Service",
			ProviderContact: "9876543215",
			Description:     "Free ambulance for chemotherapy patients",
			Timings:         "6:00 AM - 10:00 PM",
			Eligibility:     "Chemotherapy patients within 20km",
			RequiredDocs:    "Treatment schedule, ID proof",
			Location:        domain.Coordinate{Latitude: 11.2631, Longitude: 75.7847},
			Active:          true,
		},
	}
}
