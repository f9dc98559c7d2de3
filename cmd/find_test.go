package cmd

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jpl-au/juris/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type findOutput struct {
	Query     string `json:"query"`
	Count     int    `json:"count"`
	Truncated bool   `json:"truncated"`
	Results   []struct {
		FileName string `json:"file_name"`
		Year     int    `json:"year"`
		Chamber  string `json:"chamber"`
		Snippet  string `json:"snippet"`
		FullText string `json:"full_text"`
	} `json:"results"`
}

func (e *testEnv) findJSON(args ...string) findOutput {
	e.t.Helper()
	var got findOutput
	out := e.stdout(append([]string{"find", "-o", "json"}, args...)...)
	require.NoError(e.t, json.Unmarshal([]byte(out), &got), out)
	return got
}

func fileNames(f findOutput) []string {
	names := make([]string, len(f.Results))
	for i, r := range f.Results {
		names[i] = r.FileName
	}
	return names
}

func TestFind(t *testing.T) {
	env := newIndexEnv(t, fixtureRulings()...)

	t.Run("header and context", func(t *testing.T) {
		out := env.run("find", "icms")
		env.contains(out, "Resultados da busca: 2 acórdãos encontrados")
		env.contains(out, "acordao-00004.pdf")
		env.contains(out, "acordao-00002.pdf")
		env.contains(out, "Contexto: ...")
		env.contains(out, "Ano: 2021  Acórdão: 00004  Processo: E-04/000004/2021")
		assert.Less(t, strings.Index(out, "acordao-00004.pdf"), strings.Index(out, "acordao-00002.pdf"))
	})

	t.Run("prefix match", func(t *testing.T) {
		got := env.findJSON("cassa")
		assert.Equal(t, []string{"acordao-00003.pdf", "acordao-00001.pdf"}, fileNames(got))
	})

	t.Run("all terms required", func(t *testing.T) {
		got := env.findJSON("cassação", "inscrição")
		assert.Equal(t, []string{"acordao-00001.pdf"}, fileNames(got))

		got = env.findJSON("cassação inscrição")
		assert.Equal(t, []string{"acordao-00001.pdf"}, fileNames(got))
	})

	t.Run("no match", func(t *testing.T) {
		out := env.run("find", "inexistente_xyz")
		env.contains(out, "Nenhum resultado encontrado")
		env.notContains(out, "acordao-")
	})

	t.Run("empty query prints prompt", func(t *testing.T) {
		out := env.run("find")
		env.contains(out, "Digite um termo de busca")

		out = env.run("find", "   ")
		env.contains(out, "Digite um termo de busca")
	})

	t.Run("operators are literal", func(t *testing.T) {
		got := env.findJSON("multa", "OR", "importação")
		assert.Empty(t, got.Results)
		assert.NotNil(t, got.Results)
	})

	t.Run("paths only", func(t *testing.T) {
		out := env.stdout("find", "multa", "-l")
		assert.Equal(t, "acordao-00003.pdf\nacordao-00002.pdf\n", out)
	})

	t.Run("full text", func(t *testing.T) {
		out := env.run("find", "importação", "--full")
		env.contains(out, "ICMS sobre importação, inscrição em dívida ativa.")

		got := env.findJSON("importação", "--full")
		require.Len(t, got.Results, 1)
		assert.Equal(t, "ICMS sobre importação, inscrição em dívida ativa.", got.Results[0].FullText)
	})

	t.Run("JSON snippet without full text", func(t *testing.T) {
		got := env.findJSON("importação")
		require.Len(t, got.Results, 1)
		assert.Equal(t, "importação", got.Query)
		assert.Equal(t, 1, got.Count)
		assert.Contains(t, got.Results[0].Snippet, "<b>importação</b>")
		assert.Empty(t, got.Results[0].FullText)
	})
}

func TestFind_Filters(t *testing.T) {
	env := newIndexEnv(t, fixtureRulings()...)

	t.Run("year", func(t *testing.T) {
		got := env.findJSON("icms", "--year", "2020")
		assert.Equal(t, []string{"acordao-00002.pdf"}, fileNames(got))
	})

	t.Run("repeated year", func(t *testing.T) {
		got := env.findJSON("multa", "--year", "2020", "--year", "2021")
		assert.Equal(t, []string{"acordao-00003.pdf", "acordao-00002.pdf"}, fileNames(got))
	})

	t.Run("chamber", func(t *testing.T) {
		got := env.findJSON("icms", "--chamber", "1ª Câmara")
		assert.Equal(t, []string{"acordao-00004.pdf", "acordao-00002.pdf"}, fileNames(got))
	})

	t.Run("year and chamber", func(t *testing.T) {
		got := env.findJSON("icms", "--chamber", "1ª Câmara", "--year", "2021")
		assert.Equal(t, []string{"acordao-00004.pdf"}, fileNames(got))
	})

	t.Run("unknown chamber warns", func(t *testing.T) {
		out := env.run("find", "icms", "--chamber", "9ª Câmara")
		env.contains(out, "warning: chamber \"9ª Câmara\" not in the index")
		env.contains(out, "Nenhum resultado encontrado")
	})
}

func TestFind_ChamberWithComma(t *testing.T) {
	env := newIndexEnv(t,
		storetest.Ruling(1, 2020, "Câmara A, Seção 2", "icms"),
		storetest.Ruling(2, 2020, "Câmara A", "icms"),
		storetest.Ruling(3, 2020, `Câmara "Especial"`, "icms"),
	)

	got := env.findJSON("icms", "--chamber", "Câmara A, Seção 2")
	assert.Equal(t, []string{"acordao-00001.pdf"}, fileNames(got))

	got = env.findJSON("icms", "--chamber", `Câmara "Especial"`)
	assert.Equal(t, []string{"acordao-00003.pdf"}, fileNames(got))

	got = env.findJSON("icms", "--chamber", "Câmara A, Seção 2", "--chamber", "Câmara A")
	assert.Equal(t, []string{"acordao-00002.pdf", "acordao-00001.pdf"}, fileNames(got))

	out := env.run("find", "icms", "--chamber", "Câmara A, Seção 2")
	env.notContains(out, "warning")
}

func TestFind_Limit(t *testing.T) {
	env := newIndexEnv(t, storetest.Many(250, 2020, "1ª Câmara", "icms")...)

	got := env.findJSON("icms")
	assert.Equal(t, 200, got.Count)
	assert.True(t, got.Truncated)
	assert.Equal(t, "acordao-00250.pdf", got.Results[0].FileName)

	got = env.findJSON("icms", "--limit", "5")
	assert.Equal(t, 5, got.Count)
	assert.True(t, got.Truncated)

	out := env.run("find", "icms", "--limit", "3")
	env.contains(out, "Exibindo os primeiros 3 resultados")
}

func TestFind_IndexUnavailable(t *testing.T) {
	env := newTestEnv(t)
	env.env = append(env.env, "JURIS_INDEX="+env.dir+"/missing.db")

	out, err := env.runErr("find", "icms")
	assert.Error(t, err)
	env.contains(out, "search index unavailable")

	// An empty query never opens the index.
	out = env.run("find")
	env.contains(out, "Digite um termo de busca")
}

func TestFind_NoIndex(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.runErr("find", "icms")
	assert.Error(t, err)
	env.contains(out, "index not found")
}

func TestFind_IndexFlag(t *testing.T) {
	env := newIndexEnv(t, fixtureRulings()...)
	other := storetest.Build(t, storetest.Ruling(9, 2022, "A", "icms"))

	got := env.findJSON("icms", "--index", other)
	assert.Equal(t, []string{"acordao-00009.pdf"}, fileNames(got))
}
