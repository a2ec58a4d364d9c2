package service

import (
	"net/http"
	"testing"

	"fleetcommander/internal/contract"
	"fleetcommander/internal/domain/entity"
)

func (e *testEnv) mustPerson(t *testing.T, name, rank string) *contract.PersonResponse {
	t.Helper()
	person, apierr := e.People.CreatePerson(&contract.PersonRequest{FullName: name, Rank: rank})
	if apierr != nil {
		t.Fatalf("failed to seed person %q: %v", name, apierr)
	}
	return person
}

func (e *testEnv) mustAssign(t *testing.T, personID, shipID int64) {
	t.Helper()
	_, apierr := e.Crew.Assign(&contract.AssignRequest{PersonID: personID, ShipID: shipID})
	if apierr != nil {
		t.Fatalf("failed to assign person %d to ship %d: %v", personID, shipID, apierr)
	}
}

func TestAssignRejectsSecondActiveAssignment(t *testing.T) {
	env := newTestEnv(t)

	captain := env.mustPerson(t, "Olena Marchenko", "Captain")
	first := env.mustShip(t, &entity.Ship{Name: "Chornomorets", Type: "cargo", Status: "docked"})
	second := env.mustShip(t, &entity.Ship{Name: "Mriya", Type: "cargo", Status: "docked"})

	env.mustAssign(t, captain.ID, first.ID)

	_, apierr := env.Crew.Assign(&contract.AssignRequest{PersonID: captain.ID, ShipID: second.ID})
	if apierr == nil {
		t.Fatal("expected second assignment to be rejected")
	}
	if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}

func TestAssignAfterEndSucceeds(t *testing.T) {
	env := newTestEnv(t)

	captain := env.mustPerson(t, "Olena Marchenko", "Captain")
	first := env.mustShip(t, &entity.Ship{Name: "Chornomorets", Type: "cargo", Status: "docked"})
	second := env.mustShip(t, &entity.Ship{Name: "Mriya", Type: "cargo", Status: "docked"})

	env.mustAssign(t, captain.ID, first.ID)

	apierr := env.Crew.EndAssignment(&contract.EndAssignmentRequest{
		PersonID: captain.ID,
		EndUTC:   "2025-06-01T12:00:00Z",
	})
	if apierr != nil {
		t.Fatalf("failed to end assignment: %v", apierr)
	}

	env.mustAssign(t, captain.ID, second.ID)

	crew, apierr := env.Crew.CrewForShip(second.ID)
	if apierr != nil {
		t.Fatalf("failed to fetch crew: %v", apierr)
	}
	if len(crew) != 1 || crew[0].PersonID != captain.ID {
		t.Fatalf("expected captain aboard second ship, got %+v", crew)
	}
}

func TestEndAssignmentWithoutActiveIs404(t *testing.T) {
	env := newTestEnv(t)

	person := env.mustPerson(t, "Dmytro Bondar", "Engineer")

	apierr := env.Crew.EndAssignment(&contract.EndAssignmentRequest{
		PersonID: person.ID,
		EndUTC:   "2025-06-01T12:00:00Z",
	})
	if apierr == nil {
		t.Fatal("expected ending without an active assignment to fail")
	}
	if apierr.Code() != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apierr.Code())
	}
}

func TestCreatePersonCanonicalizesRank(t *testing.T) {
	env := newTestEnv(t)

	person := env.mustPerson(t, "Taras Hnatyuk", "Солдат")
	if person.Rank != entity.RankMilitary {
		t.Fatalf("expected rank %q, got %q", entity.RankMilitary, person.Rank)
	}
}

func TestCanDepartGating(t *testing.T) {
	env := newTestEnv(t)

	ship := env.mustShip(t, &entity.Ship{Name: "Herson", Type: "cargo_bulk", Status: "docked"})

	if apierr := env.Crew.CanDepart(ship); apierr == nil {
		t.Fatal("expected empty ship to be blocked")
	} else if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}

	engineer := env.mustPerson(t, "Dmytro Bondar", "Інженер")
	env.mustAssign(t, engineer.ID, ship.ID)

	if apierr := env.Crew.CanDepart(ship); apierr == nil {
		t.Fatal("expected ship without captain to be blocked")
	}

	captain := env.mustPerson(t, "Olena Marchenko", "Капітан")
	env.mustAssign(t, captain.ID, ship.ID)

	if apierr := env.Crew.CanDepart(ship); apierr != nil {
		t.Fatalf("expected fully crewed cargo ship to pass, got %v", apierr)
	}
}

func TestCanDepartRequiresTypeSpecialist(t *testing.T) {
	env := newTestEnv(t)

	ship := env.mustShip(t, &entity.Ship{Name: "Akademik Vernadsky", Type: "research", Status: "docked"})

	captain := env.mustPerson(t, "Olena Marchenko", "Captain")
	env.mustAssign(t, captain.ID, ship.ID)

	if apierr := env.Crew.CanDepart(ship); apierr == nil {
		t.Fatal("expected research ship without researcher to be blocked")
	}

	researcher := env.mustPerson(t, "Iryna Kovalenko", "Researcher")
	env.mustAssign(t, researcher.ID, ship.ID)

	if apierr := env.Crew.CanDepart(ship); apierr != nil {
		t.Fatalf("expected crewed research ship to pass, got %v", apierr)
	}
}

func TestDeletePersonWithHistoryIsConflict(t *testing.T) {
	env := newTestEnv(t)

	captain := env.mustPerson(t, "Olena Marchenko", "Captain")
	ship := env.mustShip(t, &entity.Ship{Name: "Chornomorets", Type: "cargo", Status: "docked"})
	env.mustAssign(t, captain.ID, ship.ID)

	apierr := env.Crew.EndAssignment(&contract.EndAssignmentRequest{
		PersonID: captain.ID,
		EndUTC:   "2025-06-01T12:00:00Z",
	})
	if apierr != nil {
		t.Fatalf("failed to end assignment: %v", apierr)
	}

	// Closed assignments are history and still block deletion.
	if apierr := env.People.DeletePerson(captain.ID); apierr == nil {
		t.Fatal("expected delete to be blocked by assignment history")
	} else if apierr.Code() != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apierr.Code())
	}
}
