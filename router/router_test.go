package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"marketplace/config"
	dbpkg "marketplace/db"
	"marketplace/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{
	"nome": "Ana Souza",
	"username": "ana",
	"email": "ana@exemplo.com",
	"senha": "segredo123",
	"telefone": "11987654321",
	"cpf": "52998224725",
	"genero": "feminino",
	"dataNascimento": "1990-04-12"
}`

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() config.Configuration {
	var c config.Configuration
	on := true
	c.Metrics.Enabled = &on
	return c
}

func newServer(t *testing.T, cfg config.Configuration) *gin.Engine {
	t.Helper()

	db, err := gorm.Open("sqlite3", dbpkg.SqliteDSN(":memory:"))
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, dbpkg.Migrate(db))
	t.Cleanup(func() { db.Close() })

	r := gin.New()
	Initialize(r, db, cfg)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, r http.Handler) models.User {
	t.Helper()

	w := do(r, http.MethodPost, "/user/add", userJSON)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var u models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &u))
	require.NotEmpty(t, u.UID)
	return u
}

func TestHealth(t *testing.T) {
	r := newServer(t, testConfig())

	w := do(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestPlanRoundTrip(t *testing.T) {
	r := newServer(t, testConfig())

	w := do(r, http.MethodPost, "/plan/add", `{"nome":"Premium","descricao":"Tudo liberado","valor":99.90}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	path := "/plan/findById/" + jsonID(created.ID)

	w = do(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Premium", got.Name)
	assert.True(t, got.Value.Equal(decimal.RequireFromString("99.90")))

	w = do(r, http.MethodPatch, "/plan/update/"+jsonID(created.ID), `{"valor":149.90}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Plano atualizado com sucesso.", w.Body.String())

	w = do(r, http.MethodGet, path, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Value.Equal(decimal.RequireFromString("149.90")))
	assert.Equal(t, "Tudo liberado", got.Description)

	w = do(r, http.MethodDelete, "/plan/delete/"+jsonID(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Plano deletado com sucesso.", w.Body.String())

	w = do(r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Plano não encontrado.", w.Body.String())
}

func TestFindAllEmptyIsEmptyList(t *testing.T) {
	r := newServer(t, testConfig())

	w := do(r, http.MethodGet, "/category/findAll", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateWithInvalidFieldsReturnsFieldMap(t *testing.T) {
	r := newServer(t, testConfig())

	w := do(r, http.MethodPost, "/user/add", `{"email":"invalido","cpf":"12345678900"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	for _, f := range []string{"nome", "username", "email", "senha", "telefone", "cpf"} {
		assert.Contains(t, fields, f)
	}
	assert.Equal(t, "CPF inválido", fields["cpf"])
}

func TestMalformedJSONAndBadIDAre400(t *testing.T) {
	r := newServer(t, testConfig())

	w := do(r, http.MethodPost, "/category/add", `{"nome":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.HasPrefix(w.Body.String(), "JSON inválido"), w.Body.String())

	w = do(r, http.MethodGet, "/product/findById/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "id inválido", w.Body.String())
}

func TestFindUserByEmail(t *testing.T) {
	r := newServer(t, testConfig())

	w := do(r, http.MethodGet, "/user/findByEmail/ana@exemplo.com", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario não encontrado.", w.Body.String())

	u := createUser(t, r)

	w = do(r, http.MethodGet, "/user/findByEmail/ANA@exemplo.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "senha")

	var users []models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, u.UID, users[0].UID)
}

func TestDuplicateNamesAreConflict(t *testing.T) {
	r := newServer(t, testConfig())

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/category/add", `{"nome":"Livros"}`).Code)
	w := do(r, http.MethodPost, "/category/add", `{"nome":"livros"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Categoria já existe.", w.Body.String())

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/serviceTag/add", `{"nome":"Pintura"}`).Code)
	w = do(r, http.MethodPost, "/serviceTag/add", `{"nome":"PINTURA"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	createUser(t, r)
	w = do(r, http.MethodPost, "/user/add", userJSON)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Username já está em uso.", w.Body.String())
}

func TestProductPricePatchAndReferencedDelete(t *testing.T) {
	r := newServer(t, testConfig())
	u := createUser(t, r)

	w := do(r, http.MethodPost, "/product/add", `{
		"nome": "Bicicleta",
		"estoque": 2,
		"preco": 150.00,
		"condicao": true,
		"usuarioId": "`+u.UID+`",
		"topico": 3
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

	w = do(r, http.MethodPatch, "/product/update/"+jsonID(p.ID), `{"preco":"199.90"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Produto atualizado com sucesso.", w.Body.String())

	w = do(r, http.MethodGet, "/product/findById/"+jsonID(p.ID), "")
	var got models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Price.Equal(decimal.RequireFromString("199.90")))
	assert.Equal(t, "Bicicleta", got.Name)
	assert.Equal(t, 2, got.Stock)
	assert.True(t, got.Condition)

	w = do(r, http.MethodPatch, "/product/update/"+jsonID(p.ID), `{"usuarioId":"outro"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"usuarioId":"campo não pode ser atualizado"}`, w.Body.String())

	w = do(r, http.MethodGet, "/product/findByTopic/3", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/user/delete/"+u.UID, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodDelete, "/product/delete/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Produto não encontrado.", w.Body.String())
}

func TestDeleteCartsByUser(t *testing.T) {
	r := newServer(t, testConfig())
	u := createUser(t, r)

	w := do(r, http.MethodDelete, "/shopping-cart/deleteByUser/"+u.UID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Carrinho não encontrado.", w.Body.String())

	w = do(r, http.MethodPost, "/product/add", `{"nome":"Livro","preco":30,"usuarioId":"`+u.UID+`"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

	w = do(r, http.MethodPost, "/shopping-cart/add",
		`{"usuarioId":"`+u.UID+`","produtoId":`+jsonID(p.ID)+`,"quantidade":2,"valorTotal":60}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/shopping-cart/findByUser/"+u.UID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/shopping-cart/deleteByUser/"+u.UID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Carrinho deletado com sucesso.", w.Body.String())
}

func TestDriverFailureIs500(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open("postgres", sqlDB)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectQuery(`SELECT \* FROM "categories"`).WillReturnError(errors.New("conexão recusada"))

	r := gin.New()
	Initialize(r, db, testConfig())

	w := do(r, http.MethodGet, "/category/findAll", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "conexão recusada", w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit.RPS = 0.001
	cfg.RateLimit.Burst = 2
	r := newServer(t, cfg)

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/health", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newServer(t, testConfig())

	do(r, http.MethodGet, "/category/findAll", "")

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `marketplace_http_requests_total{method="GET",path="/category/findAll",status="200"}`)

	off := false
	cfg := testConfig()
	cfg.Metrics.Enabled = &off
	w = do(newServer(t, cfg), http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func jsonID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestUserPhoneIsValidatedAfterNormalization(t *testing.T) {
	r := newServer(t, testConfig())

	body := strings.Replace(userJSON, `"11987654321"`, `"telefone-abc"`, 1)
	w := do(r, http.MethodPost, "/user/add", body)
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var fields map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	assert.Equal(t, "campo obrigatório", fields["telefone"])

	w = do(r, http.MethodGet, "/user/findAll", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAddressAcceptsMaskedCep(t *testing.T) {
	r := newServer(t, testConfig())
	u := createUser(t, r)

	w := do(r, http.MethodPost, "/address/add", `{
		"usuarioId": "`+u.UID+`",
		"cep": "01310-100",
		"estado": "SP",
		"cidade": "São Paulo",
		"bairro": "Bela Vista",
		"rua": "Av. Paulista",
		"numero": "1000"
	}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/address/findByCep/01310100", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "01310100", list[0].PostalCode)
}

func TestFindByNameWildcardMatchesNothing(t *testing.T) {
	r := newServer(t, testConfig())
	createUser(t, r)

	w := do(r, http.MethodGet, "/user/findByName/%25", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Usuario não encontrado.", w.Body.String())

	w = do(r, http.MethodGet, "/user/findByName/souza", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
