// Package mockdata holds the canned datasets served by the mock clients and
// used to seed the development backend's in-memory repositories. The records
// mirror the demo content of the original dashboard.
package mockdata

import (
	"time"

	"hospital-service/internal/pkg/models"
)

func Doctors() []models.Doctor {
	return []models.Doctor{
		{
			ID:              "1",
			Name:            "Dr. Sarah Johnson",
			Specialization:  "Cardiology",
			Experience:      15,
			Education:       "MBBS, MD - Cardiology",
			Image:           "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=300&h=300&fit=crop&crop=face",
			AvailableDays:   []string{"Monday", "Wednesday", "Friday"},
			AvailableTime:   models.TimeRange{Start: "09:00", End: "17:00"},
			ConsultationFee: 150,
			Rating:          4.8,
			TotalPatients:   1250,
			Status:          models.DoctorStatusActive,
		},
		{
			ID:              "2",
			Name:            "Dr. Michael Chen",
			Specialization:  "Neurology",
			Experience:      12,
			Education:       "MBBS, MD - Neurology",
			Image:           "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=300&h=300&fit=crop&crop=face",
			AvailableDays:   []string{"Tuesday", "Thursday", "Saturday"},
			AvailableTime:   models.TimeRange{Start: "10:00", End: "18:00"},
			ConsultationFee: 200,
			Rating:          4.9,
			TotalPatients:   980,
			Status:          models.DoctorStatusActive,
		},
		{
			ID:              "3",
			Name:            "Dr. Emily Rodriguez",
			Specialization:  "Pediatrics",
			Experience:      8,
			Education:       "MBBS, MD - Pediatrics",
			Image:           "https://images.unsplash.com/photo-1594824476967-48c8b964273f?w=300&h=300&fit=crop&crop=face",
			AvailableDays:   []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			AvailableTime:   models.TimeRange{Start: "08:00", End: "16:00"},
			ConsultationFee: 120,
			Rating:          4.7,
			TotalPatients:   2100,
			Status:          models.DoctorStatusActive,
		},
		{
			ID:              "4",
			Name:            "Dr. David Kim",
			Specialization:  "Orthopedics",
			Experience:      20,
			Education:       "MBBS, MS - Orthopedics",
			Image:           "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=300&fit=crop&crop=face",
			AvailableDays:   []string{"Monday", "Wednesday", "Friday"},
			AvailableTime:   models.TimeRange{Start: "09:00", End: "17:00"},
			ConsultationFee: 180,
			Rating:          4.6,
			TotalPatients:   890,
			Status:          models.DoctorStatusActive,
		},
		{
			ID:              "5",
			Name:            "Dr. Lisa Wang",
			Specialization:  "Dermatology",
			Experience:      10,
			Education:       "MBBS, MD - Dermatology",
			Image:           "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=300&h=300&fit=crop&crop=face",
			AvailableDays:   []string{"Tuesday", "Thursday", "Saturday"},
			AvailableTime:   models.TimeRange{Start: "10:00", End: "18:00"},
			ConsultationFee: 160,
			Rating:          4.8,
			TotalPatients:   1450,
			Status:          models.DoctorStatusActive,
		},
	}
}

func Patients() []models.Patient {
	return []models.Patient{
		{
			ID:         "1",
			Name:       "John Doe",
			Email:      "john.doe@email.com",
			Phone:      "+1-555-0123",
			Age:        35,
			Gender:     "male",
			BloodGroup: "O+",
			Address:    "123 Main St, City, State 12345",
			EmergencyContact: models.EmergencyContact{
				Name:         "Jane Doe",
				Phone:        "+1-555-0124",
				Relationship: "Spouse",
			},
			MedicalHistory: []string{"Hypertension", "Diabetes"},
			Allergies:      []string{"Penicillin"},
			CreatedAt:      time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         "2",
			Name:       "Jane Smith",
			Email:      "jane.smith@email.com",
			Phone:      "+1-555-0125",
			Age:        28,
			Gender:     "female",
			BloodGroup: "A+",
			Address:    "456 Oak Ave, City, State 12345",
			EmergencyContact: models.EmergencyContact{
				Name:         "Bob Smith",
				Phone:        "+1-555-0126",
				Relationship: "Father",
			},
			MedicalHistory: []string{"Asthma"},
			Allergies:      []string{"Dust", "Pollen"},
			CreatedAt:      time.Date(2023, 2, 20, 14, 30, 0, 0, time.UTC),
		},
		{
			ID:         "3",
			Name:       "Mike Johnson",
			Email:      "mike.johnson@email.com",
			Phone:      "+1-555-0127",
			Age:        42,
			Gender:     "male",
			BloodGroup: "B+",
			Address:    "789 Pine Rd, City, State 12345",
			EmergencyContact: models.EmergencyContact{
				Name:         "Sarah Johnson",
				Phone:        "+1-555-0128",
				Relationship: "Sister",
			},
			MedicalHistory: []string{"Heart Disease"},
			Allergies:      []string{"Shellfish"},
			CreatedAt:      time.Date(2023, 3, 10, 9, 15, 0, 0, time.UTC),
		},
	}
}

func Appointments() []models.Appointment {
	return []models.Appointment{
		{
			ID:          "1",
			PatientID:   "1",
			DoctorID:    "1",
			PatientName: "John Doe",
			DoctorName:  "Dr. Sarah Johnson",
			Date:        "2024-01-15",
			Time:        "10:00",
			Status:      models.AppointmentStatusConfirmed,
			Symptoms:    "Chest pain and shortness of breath",
			CreatedAt:   time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			PatientID:   "2",
			DoctorID:    "2",
			PatientName: "Jane Smith",
			DoctorName:  "Dr. Michael Chen",
			Date:        "2024-01-16",
			Time:        "14:00",
			Status:      models.AppointmentStatusScheduled,
			Symptoms:    "Headache and dizziness",
			CreatedAt:   time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			PatientID:   "3",
			DoctorID:    "3",
			PatientName: "Mike Johnson",
			DoctorName:  "Dr. Emily Rodriguez",
			Date:        "2024-01-14",
			Time:        "11:00",
			Status:      models.AppointmentStatusCompleted,
			Symptoms:    "Fever and cough",
			Diagnosis:   "Common cold",
			CreatedAt:   time.Date(2024, 1, 9, 15, 0, 0, 0, time.UTC),
		},
	}
}

func Prescriptions() []models.Prescription {
	return []models.Prescription{
		{
			ID:            "1",
			AppointmentID: "1",
			Medicines: []models.Medicine{
				{
					ID:           "1",
					Name:         "Aspirin",
					Dosage:       "100mg",
					Frequency:    "Once daily",
					Duration:     "7 days",
					Instructions: "Take with food",
					Price:        15.99,
				},
				{
					ID:           "2",
					Name:         "Ibuprofen",
					Dosage:       "400mg",
					Frequency:    "Every 6 hours",
					Duration:     "5 days",
					Instructions: "Take as needed for pain",
					Price:        12.50,
				},
			},
			Tests: []models.Test{
				{
					ID:           "1",
					Name:         "Blood Test",
					Description:  "Complete blood count",
					Price:        45.00,
					Preparation:  "Fasting required for 8 hours",
					Status:       models.TestStatusPending,
					PrescribedBy: "Dr. Sarah Johnson",
					PrescribedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
				},
			},
			Notes:        "Patient shows signs of inflammation. Monitor symptoms and return if condition worsens.",
			PrescribedBy: "Dr. Sarah Johnson",
			PrescribedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}

func Billing() []models.Billing {
	paidAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return []models.Billing{
		{
			ID:            "1",
			PatientID:     "1",
			PatientName:   "John Doe",
			AppointmentID: "1",
			Items: []models.BillingItem{
				{
					ID:         "1",
					Name:       "Consultation - Dr. Sarah Johnson",
					Type:       models.BillingItemConsultation,
					Quantity:   1,
					UnitPrice:  150.00,
					TotalPrice: 150.00,
				},
				{
					ID:         "2",
					Name:       "Aspirin 100mg",
					Type:       models.BillingItemMedicine,
					Quantity:   1,
					UnitPrice:  15.99,
					TotalPrice: 15.99,
				},
				{
					ID:         "3",
					Name:       "Blood Test",
					Type:       models.BillingItemTest,
					Quantity:   1,
					UnitPrice:  45.00,
					TotalPrice: 45.00,
				},
			},
			TotalAmount: 210.99,
			PaidAmount:  210.99,
			Status:      models.BillingStatusPaid,
			CreatedAt:   time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			PaidAt:      &paidAt,
		},
		{
			ID:            "2",
			PatientID:     "2",
			PatientName:   "Jane Smith",
			AppointmentID: "2",
			Items: []models.BillingItem{
				{
					ID:         "4",
					Name:       "Consultation - Dr. Michael Chen",
					Type:       models.BillingItemConsultation,
					Quantity:   1,
					UnitPrice:  200.00,
					TotalPrice: 200.00,
				},
			},
			TotalAmount: 200.00,
			PaidAmount:  0.00,
			Status:      models.BillingStatusPending,
			CreatedAt:   time.Date(2024, 1, 16, 14, 0, 0, 0, time.UTC),
		},
	}
}

func Users() []models.User {
	return []models.User{
		{
			ID:     "1",
			Name:   "Admin User",
			Email:  "admin@hospital.com",
			Role:   models.RoleAdmin,
			Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:     "2",
			Name:   "Dr. Sarah Johnson",
			Email:  "sarah.johnson@hospital.com",
			Role:   models.RoleDoctor,
			Avatar: "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:     "3",
			Name:   "John Doe",
			Email:  "john.doe@email.com",
			Role:   models.RolePatient,
			Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
		},
		{
			ID:     "4",
			Name:   "Lisa Chen",
			Email:  "lab.tech@hospital.com",
			Role:   models.RoleLabTechnician,
			Avatar: "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=150&h=150&fit=crop&crop=face",
		},
	}
}
