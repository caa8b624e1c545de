package models

// Allegiance is the superpower a system or faction is aligned with
type Allegiance string

const (
	AllegianceAlliance         Allegiance = "Alliance"
	AllegianceEmpire           Allegiance = "Empire"
	AllegianceFederation       Allegiance = "Federation"
	AllegianceIndependent      Allegiance = "Independent"
	AllegianceThargoid         Allegiance = "Thargoid"
	AllegianceGuardian         Allegiance = "Guardian"
	AllegiancePilotsFederation Allegiance = "Pilots Federation"
	AllegianceNone             Allegiance = "None"
)

// Known reports whether a is one of the values this package has constants for.
// Unknown values are kept verbatim rather than rejected.
func (a Allegiance) Known() bool {
	switch a {
	case AllegianceAlliance, AllegianceEmpire, AllegianceFederation, AllegianceIndependent,
		AllegianceThargoid, AllegianceGuardian, AllegiancePilotsFederation, AllegianceNone:
		return true
	}
	return false
}

// Government is a faction's form of government
type Government string

const (
	GovernmentAnarchy      Government = "Anarchy"
	GovernmentCommunism    Government = "Communism"
	GovernmentConfederacy  Government = "Confederacy"
	GovernmentCooperative  Government = "Cooperative"
	GovernmentCorporate    Government = "Corporate"
	GovernmentDemocracy    Government = "Democracy"
	GovernmentDictatorship Government = "Dictatorship"
	GovernmentFeudal       Government = "Feudal"
	GovernmentPatronage    Government = "Patronage"
	GovernmentPrison       Government = "Prison"
	GovernmentPrisonColony Government = "Prison colony"
	GovernmentTheocracy    Government = "Theocracy"
	GovernmentEngineer     Government = "Engineer"
	GovernmentCarrier      Government = "Private Ownership"
	GovernmentNone         Government = "None"
)

// Known reports whether g has a constant in this package
func (g Government) Known() bool {
	switch g {
	case GovernmentAnarchy, GovernmentCommunism, GovernmentConfederacy, GovernmentCooperative,
		GovernmentCorporate, GovernmentDemocracy, GovernmentDictatorship, GovernmentFeudal,
		GovernmentPatronage, GovernmentPrison, GovernmentPrisonColony, GovernmentTheocracy,
		GovernmentEngineer, GovernmentCarrier, GovernmentNone:
		return true
	}
	return false
}

// Security is a system's security level
type Security string

const (
	SecurityHigh    Security = "High"
	SecurityMedium  Security = "Medium"
	SecurityLow     Security = "Low"
	SecurityAnarchy Security = "Anarchy"
	SecurityLawless Security = "Lawless"
)

// Known reports whether s has a constant in this package
func (s Security) Known() bool {
	switch s {
	case SecurityHigh, SecurityMedium, SecurityLow, SecurityAnarchy, SecurityLawless:
		return true
	}
	return false
}

// Economy is a system's primary or secondary economy
type Economy string

const (
	EconomyAgriculture  Economy = "Agriculture"
	EconomyColony       Economy = "Colony"
	EconomyExtraction   Economy = "Extraction"
	EconomyHighTech     Economy = "High Tech"
	EconomyIndustrial   Economy = "Industrial"
	EconomyMilitary     Economy = "Military"
	EconomyRefinery     Economy = "Refinery"
	EconomyService      Economy = "Service"
	EconomyTerraforming Economy = "Terraforming"
	EconomyTourism      Economy = "Tourism"
	EconomyPrison       Economy = "Prison"
	EconomyDamaged      Economy = "Damaged"
	EconomyRescue       Economy = "Rescue"
	EconomyRepair       Economy = "Repair"
	EconomyCarrier      Economy = "Private Enterprise"
	EconomyEngineering  Economy = "Engineering"
	EconomyNone         Economy = "None"
)

// Known reports whether e has a constant in this package
func (e Economy) Known() bool {
	switch e {
	case EconomyAgriculture, EconomyColony, EconomyExtraction, EconomyHighTech, EconomyIndustrial,
		EconomyMilitary, EconomyRefinery, EconomyService, EconomyTerraforming, EconomyTourism,
		EconomyPrison, EconomyDamaged, EconomyRescue, EconomyRepair, EconomyCarrier,
		EconomyEngineering, EconomyNone:
		return true
	}
	return false
}

// Reserve is the remaining resource level of a system's rings and belts
type Reserve string

const (
	ReservePristine Reserve = "Pristine"
	ReserveMajor    Reserve = "Major"
	ReserveCommon   Reserve = "Common"
	ReserveLow      Reserve = "Low"
	ReserveDepleted Reserve = "Depleted"
)

// Known reports whether r has a constant in this package
func (r Reserve) Known() bool {
	switch r {
	case ReservePristine, ReserveMajor, ReserveCommon, ReserveLow, ReserveDepleted:
		return true
	}
	return false
}
