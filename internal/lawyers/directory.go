package lawyers

// ReferenceDirectory mirrors the seeded lawyers rows for in-memory mode.
func ReferenceDirectory() []Lawyer {
	return []Lawyer{
		{ID: "5b1f0c1e-3f0a-4c55-9a61-0d3c2f1a0001", FullName: "Dra. María González", Specialty: "Derechos de Discapacidad, Accesibilidad, Inclusión", ExperienceYears: 15, Rating: 4.9, Available: true},
		{ID: "5b1f0c1e-3f0a-4c55-9a61-0d3c2f1a0002", FullName: "Dr. Carlos Rodríguez", Specialty: "Derecho Laboral, Discapacidad, Discriminación", ExperienceYears: 12, Rating: 4.8, Available: true},
		{ID: "5b1f0c1e-3f0a-4c55-9a61-0d3c2f1a0003", FullName: "Dra. Ana Martínez", Specialty: "Derecho Civil, Herencias, Testamentos, Patrimonio Protegido", ExperienceYears: 18, Rating: 4.9, Available: true},
		{ID: "5b1f0c1e-3f0a-4c55-9a61-0d3c2f1a0004", FullName: "Dr. Javier López", Specialty: "Pensiones, Seguridad Social, Incapacidad Laboral", ExperienceYears: 10, Rating: 4.7, Available: true},
		{ID: "5b1f0c1e-3f0a-4c55-9a61-0d3c2f1a0005", FullName: "Dra. Laura Sánchez", Specialty: "Accesibilidad, Derechos Humanos, Litigios", ExperienceYears: 14, Rating: 4.8, Available: true},
	}
}
