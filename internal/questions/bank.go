package questions

// ReferenceBank mirrors the seeded legal_questions rows for in-memory mode.
func ReferenceBank() []LegalQuestion {
	return []LegalQuestion{
		{ID: "lq-laboral-1", Category: "laboral", Frequency: 12, Question: "¿Qué adaptaciones razonables debe ofrecer mi empleador?", Answer: "La Ley N° 29973 obliga al empleador a realizar ajustes razonables en el lugar de trabajo."},
		{ID: "lq-laboral-2", Category: "laboral", Frequency: 9, Question: "¿Existe una cuota de empleo para personas con discapacidad?", Answer: "Las entidades públicas deben cubrir 5% y las privadas con más de 50 trabajadores 3%."},
		{ID: "lq-pensiones-1", Category: "pensiones", Frequency: 10, Question: "¿Cómo solicito una pensión por invalidez?", Answer: "Debe presentar el certificado de discapacidad ante ONP o su AFP."},
		{ID: "lq-pensiones-2", Category: "pensiones", Frequency: 7, Question: "¿Qué es la pensión no contributiva por discapacidad severa?", Answer: "Es el programa CONTIGO, dirigido a personas con discapacidad severa en situación de pobreza."},
		{ID: "lq-herencias-1", Category: "herencias", Frequency: 6, Question: "¿Cómo protejo el patrimonio de un hijo con discapacidad?", Answer: "Puede otorgar testamento y designar apoyos conforme al Código Civil."},
		{ID: "lq-accesibilidad-1", Category: "accesibilidad", Frequency: 8, Question: "¿Qué hago si un edificio público no es accesible?", Answer: "Puede presentar una queja ante CONADIS y la municipalidad correspondiente."},
		{ID: "lq-certificacion-1", Category: "certificacion", Frequency: 11, Question: "¿Dónde obtengo el certificado de discapacidad?", Answer: "Se tramita en establecimientos de salud autorizados por el MINSA."},
		{ID: "lq-certificacion-2", Category: "certificacion", Frequency: 5, Question: "¿Cómo me inscribo en el registro de CONADIS?", Answer: "Con el certificado de discapacidad puede inscribirse en el Registro Nacional."},
		{ID: "lq-judicial-1", Category: "judicial", Frequency: 4, Question: "¿Tengo derecho a ajustes en un proceso judicial?", Answer: "Sí, el acceso a la justicia incluye ajustes de procedimiento."},
		{ID: "lq-tributario-1", Category: "tributario", Frequency: 3, Question: "¿Existen beneficios tributarios para personas con discapacidad?", Answer: "Hay exoneraciones en la importación de vehículos especiales y ayudas técnicas."},
		{ID: "lq-ayudas-1", Category: "ayudas", Frequency: 4, Question: "¿Cómo accedo a ayudas técnicas como sillas de ruedas?", Answer: "Puede solicitarlas al SIS, EsSalud o programas de CONADIS."},
		{ID: "lq-transporte-1", Category: "transporte", Frequency: 5, Question: "¿Tengo derecho a asientos reservados en el transporte público?", Answer: "La Ley N° 29973 reconoce asientos preferentes y tarifas especiales."},
		{ID: "lq-patrimonio-1", Category: "patrimonio", Frequency: 3, Question: "¿Puedo administrar mis bienes con apoyos?", Answer: "El Decreto Legislativo 1384 reconoce la capacidad jurídica con apoyos."},
	}
}
