package services

import (
	"context"
	"errors"
	"testing"

	"fanhub/internal/models"
	"fanhub/internal/repository"
	"fanhub/internal/utils"
)

func TestDeleteUser_OnlyOwner(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("u1", "victim", "pass", models.RoleMember)

	for _, role := range []string{models.RoleMember, models.RoleManager} {
		if err := service.DeleteUser(context.Background(), role, "u1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("роль %q не должна удалять учётки, получено: %v", role, err)
		}
	}

	if err := service.DeleteUser(context.Background(), models.RoleOwner, "u1"); err != nil {
		t.Fatalf("владелец должен удалять учётки: %v", err)
	}
	if _, err := repo.GetUserByID(context.Background(), "u1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("учётка не удалена")
	}
}

func TestDeleteUser_OwnerIsProtected(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("o1", "boss", "pass", models.RoleOwner)

	// Даже сам владелец не может удалить свою учётку
	if err := service.DeleteUser(context.Background(), models.RoleOwner, "o1"); !errors.Is(err, ErrOwnerProtected) {
		t.Fatalf("ожидался ErrOwnerProtected, получено: %v", err)
	}
	if _, err := repo.GetUserByID(context.Background(), "o1"); err != nil {
		t.Fatal("учётка владельца исчезла")
	}
}

func TestUpdateUser_MemberForbidden(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("u1", "victim", "pass", models.RoleMember)

	name := "Новое имя"
	_, err := service.UpdateUser(context.Background(), "u2", models.RoleMember, "u1", &models.UpdateUserRequest{AuthorName: &name})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("member не должен править чужие учётки, получено: %v", err)
	}
}

func TestUpdateUser_ManagerCannotTouchOwner(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("o1", "boss", "pass", models.RoleOwner)

	newName := "hacked"
	_, err := service.UpdateUser(context.Background(), "m1", models.RoleManager, "o1", &models.UpdateUserRequest{Username: &newName})
	if !errors.Is(err, ErrOwnerProtected) {
		t.Fatalf("ожидался ErrOwnerProtected, получено: %v", err)
	}
}

func TestUpdateUser_RoleValidation(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("u1", "victim", "pass", models.RoleMember)

	bad := "superadmin"
	_, err := service.UpdateUser(context.Background(), "m1", models.RoleManager, "u1", &models.UpdateUserRequest{Role: &bad})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ожидался ErrValidation для роли %q, получено: %v", bad, err)
	}

	// Попытка выдать owner тоже отклоняется
	owner := models.RoleOwner
	_, err = service.UpdateUser(context.Background(), "m1", models.RoleManager, "u1", &models.UpdateUserRequest{Role: &owner})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("роль owner нельзя выдать через обновление, получено: %v", err)
	}
}

func TestUpdateUser_ManagerUpdatesMember(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("u1", "victim", "pass", models.RoleMember)

	role := models.RoleManager
	password := "newpass"
	updated, err := service.UpdateUser(context.Background(), "m1", models.RoleManager, "u1", &models.UpdateUserRequest{
		Role:     &role,
		Password: &password,
	})
	if err != nil {
		t.Fatalf("ошибка обновления: %v", err)
	}
	if updated.Role != models.RoleManager {
		t.Fatalf("роль не обновлена: %q", updated.Role)
	}
	if !utils.CheckPasswordHash("newpass", updated.PasswordHash) {
		t.Fatal("пароль не перехеширован")
	}
}

func TestUpdateUser_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	service := NewUserService(repo)

	repo.add("u1", "victim", "pass", models.RoleMember)
	repo.add("u2", "taken", "pass", models.RoleMember)

	taken := "taken"
	_, err := service.UpdateUser(context.Background(), "m1", models.RoleManager, "u1", &models.UpdateUserRequest{Username: &taken})
	if !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("ожидался ErrUsernameTaken, получено: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newMockUserRepo()
	service := NewProfileService(repo)

	repo.add("u1", "alice", "pass", models.RoleMember)

	bio := "Пишу про стенды"
	password := "stronger"
	updated, err := service.UpdateProfile(context.Background(), "u1", &models.UpdateProfileRequest{
		Description: &bio,
		Password:    &password,
	})
	if err != nil {
		t.Fatalf("ошибка обновления профиля: %v", err)
	}
	if updated.Description == nil || *updated.Description != bio {
		t.Fatal("описание не обновлено")
	}
	if !utils.CheckPasswordHash("stronger", updated.PasswordHash) {
		t.Fatal("пароль не перехеширован")
	}
	if updated.Username != "alice" {
		t.Fatal("username не должен меняться через профиль")
	}
}
